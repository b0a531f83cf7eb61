// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gate

import (
	"math"
	"math/big"

	"github.com/openledger-labs/tokenet/bps"
	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/params"
	"github.com/openledger-labs/tokenet/builtin/tax"
	"github.com/openledger-labs/tokenet/builtin/token"
	"github.com/openledger-labs/tokenet/log"
	"github.com/openledger-labs/tokenet/metrics"
	"github.com/openledger-labs/tokenet/tokenet"
)

var logger = log.WithContext("pkg", "gate")

var (
	metricTransfers    = metrics.CounterVec("gate_transfers_total", []string{"kind"})
	metricTaxCollected = metrics.Counter("gate_tax_collected_total")
)

// TransferGate is the taxed transfer path. It decides per transfer whether
// tax applies, which rate, and how the collected fee is split.
type TransferGate struct {
	token    *token.Token
	tax      *tax.TaxGovernor
	aut      *authority.Authority
	params   *params.Params
	pair     tokenet.Address
	treasury tokenet.Address
}

func New(
	tok *token.Token,
	gov *tax.TaxGovernor,
	aut *authority.Authority,
	par *params.Params,
	pair tokenet.Address,
	treasury tokenet.Address,
) *TransferGate {
	return &TransferGate{
		token:    tok,
		tax:      gov,
		aut:      aut,
		params:   par,
		pair:     pair,
		treasury: treasury,
	}
}

// Transfer moves amount from one account to another, applying cooldown and
// tax rules.
func (g *TransferGate) Transfer(from, to tokenet.Address, amount *big.Int, now uint64) error {
	return g.transfer(from, to, amount, now)
}

// TransferFrom is Transfer on behalf of spender, consuming allowance first.
func (g *TransferGate) TransferFrom(spender, from, to tokenet.Address, amount *big.Int, now uint64) error {
	if err := g.token.UseAllowance(from, spender, amount); err != nil {
		return err
	}
	return g.transfer(from, to, amount, now)
}

func (g *TransferGate) transfer(from, to tokenet.Address, amount *big.Int, now uint64) error {
	exempt, err := g.eitherExempt(from, to)
	if err != nil {
		return err
	}
	if exempt {
		if err := g.token.Transfer(from, to, amount); err != nil {
			return err
		}
		if err := g.stampBoth(from, to, now); err != nil {
			return err
		}
		metricTransfers.AddWithLabel(1, map[string]string{"kind": "exempt"})
		return nil
	}

	if err := g.checkCooldown(from, now); err != nil {
		return err
	}
	if err := g.checkCooldown(to, now); err != nil {
		return err
	}
	if err := g.stampBoth(from, to, now); err != nil {
		return err
	}

	rate := g.rate(from, to)
	fee, net := bps.Split(amount, rate)

	if fee.Sign() > 0 {
		if err := g.collect(from, fee); err != nil {
			return err
		}
	}
	if err := g.token.Transfer(from, to, net); err != nil {
		return err
	}

	metricTransfers.AddWithLabel(1, map[string]string{"kind": "taxed"})
	if fee.IsInt64() {
		metricTaxCollected.Add(fee.Int64())
	} else {
		metricTaxCollected.Add(math.MaxInt64)
	}
	logger.Debug("gated transfer", "from", from, "to", to, "amount", amount, "rate", rate, "fee", fee)
	return nil
}

// rate picks the applicable tax rate from the transfer direction relative to
// the trading pair.
func (g *TransferGate) rate(from, to tokenet.Address) uint16 {
	buy, sell := g.tax.GetTax()
	switch {
	case from == g.pair:
		return buy
	case to == g.pair:
		return sell
	default:
		return 0
	}
}

// collect takes the fee from the sender and splits it between the retained
// pot, the treasury and the burn. Integer rounding leftovers stay in the
// retained share so the fee is conserved exactly.
func (g *TransferGate) collect(from tokenet.Address, fee *big.Int) error {
	_, treasuryShare, burnShare, err := g.params.FeeShares()
	if err != nil {
		return err
	}
	toTreasury := bps.Share(fee, treasuryShare)
	toBurn := bps.Share(fee, burnShare)
	retained := new(big.Int).Sub(fee, toTreasury)
	retained.Sub(retained, toBurn)

	if err := g.token.Transfer(from, g.token.Address(), retained); err != nil {
		return err
	}
	if err := g.token.Transfer(from, g.treasury, toTreasury); err != nil {
		return err
	}
	return g.Burn(from, toBurn)
}

// Burn routes the burn share through the ledger's burn counter.
func (g *TransferGate) Burn(from tokenet.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	return g.token.Burn(from, amount)
}

func (g *TransferGate) eitherExempt(from, to tokenet.Address) (bool, error) {
	fromExempt, err := g.aut.IsExempt(from)
	if err != nil {
		return false, err
	}
	if fromExempt {
		return true, nil
	}
	return g.aut.IsExempt(to)
}

// The cooldown is a per-wallet anti-bot measure. The pair trades with many
// wallets inside one window, so it is never throttled or stamped.
func (g *TransferGate) checkCooldown(addr tokenet.Address, now uint64) error {
	if addr == g.pair {
		return nil
	}
	return g.tax.CheckCooldown(addr, now)
}

func (g *TransferGate) stamp(addr tokenet.Address, now uint64) error {
	if addr == g.pair {
		return nil
	}
	return g.tax.Stamp(addr, now)
}

func (g *TransferGate) stampBoth(from, to tokenet.Address, now uint64) error {
	if err := g.stamp(from, now); err != nil {
		return err
	}
	return g.stamp(to, now)
}
