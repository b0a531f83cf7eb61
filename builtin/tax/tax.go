// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tax

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/params"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/slot"
	"github.com/openledger-labs/tokenet/log"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var logger = log.WithContext("pkg", "tax")

var (
	initializedPos = tokenet.Blake2b([]byte("initialized"))
	buyTaxPos      = tokenet.Blake2b([]byte("buy-tax-bps"))
	sellTaxPos     = tokenet.Blake2b([]byte("sell-tax-bps"))
	adminDelayPos  = tokenet.Blake2b([]byte("admin-delay"))
	minTxDelayPos  = tokenet.Blake2b([]byte("min-tx-delay"))
	proposalPos    = tokenet.Blake2b([]byte("pending-proposal"))
	lastTxPos      = tokenet.Blake2b([]byte("last-tx"))
)

// proposal is a pending tax-rate change awaiting the admin delay.
type proposal struct {
	Buy        uint16
	Sell       uint16
	ProposedAt uint64
}

// TaxGovernor owns the buy/sell tax rates and the anti-bot cooldown. Rate
// changes go through a two-phase propose/execute with a fixed admin delay.
type TaxGovernor struct {
	ctx    *slot.Context
	aut    *authority.Authority
	params *params.Params

	initialized *slot.Bool
	buyTax      *slot.Uint256
	sellTax     *slot.Uint256
	adminDelay  *slot.Uint256
	minTxDelay  *slot.Uint256
	lastTx      *slot.Mapping[tokenet.Address, uint64]
}

func New(addr tokenet.Address, st *state.State, aut *authority.Authority, par *params.Params) *TaxGovernor {
	ctx := slot.NewContext(addr, st)
	return &TaxGovernor{
		ctx:         ctx,
		aut:         aut,
		params:      par,
		initialized: slot.NewBool(ctx, initializedPos),
		buyTax:      slot.NewUint256(ctx, buyTaxPos),
		sellTax:     slot.NewUint256(ctx, sellTaxPos),
		adminDelay:  slot.NewUint256(ctx, adminDelayPos),
		minTxDelay:  slot.NewUint256(ctx, minTxDelayPos),
		lastTx:      slot.NewMapping[tokenet.Address, uint64](ctx, lastTxPos),
	}
}

// Initialize sets the default rates and the admin delay. Can only be called
// once.
func (t *TaxGovernor) Initialize(adminDelay uint64) error {
	if t.initialized.Get() {
		return reverts.New(reverts.AlreadyInState, "already initialized")
	}
	t.initialized.Set(true)
	t.buyTax.Set(big.NewInt(int64(tokenet.DefaultBuyTaxBps)))
	t.sellTax.Set(big.NewInt(int64(tokenet.DefaultSellTaxBps)))
	t.adminDelay.Set(new(big.Int).SetUint64(adminDelay))
	t.minTxDelay.Set(new(big.Int).SetUint64(tokenet.MinTxDelayFloor))
	return nil
}

func (t *TaxGovernor) requireAdmin(caller tokenet.Address) error {
	ok, err := t.aut.HasRole(caller, authority.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.New(reverts.Unauthorized, "caller is not admin")
	}
	return nil
}

func (t *TaxGovernor) getProposal() (*proposal, error) {
	var p *proposal
	err := t.ctx.State().DecodeStorage(t.ctx.Address(), proposalPos, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		p = &proposal{}
		return rlp.DecodeBytes(raw, p)
	})
	return p, err
}

func (t *TaxGovernor) setProposal(p *proposal) error {
	return t.ctx.State().EncodeStorage(t.ctx.Address(), proposalPos, func() ([]byte, error) {
		if p == nil {
			return nil, nil
		}
		return rlp.EncodeToBytes(p)
	})
}

// Propose stages a tax-rate change. A pending proposal is overwritten, live
// rates are untouched until Execute.
func (t *TaxGovernor) Propose(caller tokenet.Address, buy, sell uint16, now uint64) error {
	if err := t.requireAdmin(caller); err != nil {
		return err
	}
	if buy > tokenet.MaxTaxBps || sell > tokenet.MaxTaxBps {
		return reverts.New(reverts.InvalidParameter, "tax rate exceeds %d bps", tokenet.MaxTaxBps)
	}
	if err := t.setProposal(&proposal{Buy: buy, Sell: sell, ProposedAt: now}); err != nil {
		return err
	}
	logger.Info("tax change proposed", "buy", buy, "sell", sell, "at", now)
	return nil
}

// Execute commits a previously proposed tax-rate change. All of buy, sell and
// proposedAt must match the stored proposal exactly, and the admin delay must
// have elapsed.
func (t *TaxGovernor) Execute(caller tokenet.Address, buy, sell uint16, proposedAt, now uint64) error {
	if err := t.requireAdmin(caller); err != nil {
		return err
	}
	p, err := t.getProposal()
	if err != nil {
		return err
	}
	if p == nil || p.Buy != buy || p.Sell != sell || p.ProposedAt != proposedAt {
		return reverts.New(reverts.Mismatch, "no matching proposal")
	}
	if now < p.ProposedAt+t.adminDelay.Get().Uint64() {
		return reverts.New(reverts.NotReady, "admin delay not elapsed")
	}
	t.buyTax.Set(big.NewInt(int64(buy)))
	t.sellTax.Set(big.NewInt(int64(sell)))
	if err := t.setProposal(nil); err != nil {
		return err
	}
	logger.Info("tax change executed", "buy", buy, "sell", sell)
	return nil
}

// GetTax returns the live buy and sell rates in basis points.
func (t *TaxGovernor) GetTax() (buy, sell uint16) {
	return uint16(t.buyTax.Get().Uint64()), uint16(t.sellTax.Get().Uint64())
}

// PendingProposal returns the staged rate change, or ok=false when none.
func (t *TaxGovernor) PendingProposal() (buy, sell uint16, proposedAt uint64, ok bool, err error) {
	p, err := t.getProposal()
	if err != nil || p == nil {
		return 0, 0, 0, false, err
	}
	return p.Buy, p.Sell, p.ProposedAt, true, nil
}

// AdminDelay returns the delay between propose and execute, in seconds.
func (t *TaxGovernor) AdminDelay() uint64 {
	return t.adminDelay.Get().Uint64()
}

// SetMinTxDelay updates the anti-bot cooldown. The value cannot go below the
// floor held in params.
func (t *TaxGovernor) SetMinTxDelay(caller tokenet.Address, delay uint64) error {
	if err := t.requireAdmin(caller); err != nil {
		return err
	}
	floor, err := t.params.Get(tokenet.KeyMinTxDelayFloor)
	if err != nil {
		return err
	}
	if delay < floor.Uint64() {
		return reverts.New(reverts.InvalidParameter, "delay below floor of %d", floor.Uint64())
	}
	t.minTxDelay.Set(new(big.Int).SetUint64(delay))
	return nil
}

// MinTxDelay returns the anti-bot cooldown in seconds.
func (t *TaxGovernor) MinTxDelay() uint64 {
	return t.minTxDelay.Get().Uint64()
}

// LastTx returns the timestamp of an account's last gated transfer, zero if
// it never transacted.
func (t *TaxGovernor) LastTx(addr tokenet.Address) (uint64, error) {
	return t.lastTx.Get(addr)
}

// Stamp records now as the account's last transfer time.
func (t *TaxGovernor) Stamp(addr tokenet.Address, now uint64) error {
	return t.lastTx.Set(addr, now)
}

// CheckCooldown fails with TooFrequent when the account transacted within
// the cooldown window. A first transfer always passes.
func (t *TaxGovernor) CheckCooldown(addr tokenet.Address, now uint64) error {
	last, err := t.lastTx.Get(addr)
	if err != nil {
		return err
	}
	if last != 0 && now-last < t.MinTxDelay() {
		return reverts.New(reverts.TooFrequent, "transfer cooldown not elapsed")
	}
	return nil
}
