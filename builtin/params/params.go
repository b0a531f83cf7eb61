// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package params

import (
	"math/big"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

// Params is the keyed store of governance-tunable numbers.
type Params struct {
	addr  tokenet.Address
	state *state.State
	aut   *authority.Authority
}

func New(addr tokenet.Address, state *state.State, aut *authority.Authority) *Params {
	return &Params{addr, state, aut}
}

// Get returns the value stored under key, zero if unset.
func (p *Params) Get(key tokenet.Bytes32) (*big.Int, error) {
	var v big.Int
	if err := p.state.GetStructuredStorage(p.addr, key, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Set stores value under key. Caller must be admin. The fee share keys are
// coupled by a sum invariant and can only change through SetFeeShares.
func (p *Params) Set(caller tokenet.Address, key tokenet.Bytes32, value *big.Int) error {
	if err := p.requireAdmin(caller); err != nil {
		return err
	}
	if key == tokenet.KeyTaxShareRetained || key == tokenet.KeyTaxShareTreasury || key == tokenet.KeyTaxShareBurn {
		return reverts.New(reverts.InvalidParameter, "fee shares must be set together")
	}
	if value.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "negative param value")
	}
	return p.state.SetStructuredStorage(p.addr, key, value)
}

// SetFeeShares updates the split of collected tax between the retained pot,
// the treasury and the burn. The three shares must sum to the full
// denominator. Caller must be admin.
func (p *Params) SetFeeShares(caller tokenet.Address, retained, treasury, burn *big.Int) error {
	if err := p.requireAdmin(caller); err != nil {
		return err
	}
	if retained.Sign() < 0 || treasury.Sign() < 0 || burn.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "negative fee share")
	}
	sum := new(big.Int).Add(retained, treasury)
	sum.Add(sum, burn)
	if sum.Cmp(big.NewInt(int64(tokenet.TaxDenominator))) != 0 {
		return reverts.New(reverts.InvalidParameter, "fee shares must sum to %d", tokenet.TaxDenominator)
	}
	if err := p.state.SetStructuredStorage(p.addr, tokenet.KeyTaxShareRetained, retained); err != nil {
		return err
	}
	if err := p.state.SetStructuredStorage(p.addr, tokenet.KeyTaxShareTreasury, treasury); err != nil {
		return err
	}
	return p.state.SetStructuredStorage(p.addr, tokenet.KeyTaxShareBurn, burn)
}

// FeeShares returns the current tax split.
func (p *Params) FeeShares() (retained, treasury, burn *big.Int, err error) {
	if retained, err = p.Get(tokenet.KeyTaxShareRetained); err != nil {
		return
	}
	if treasury, err = p.Get(tokenet.KeyTaxShareTreasury); err != nil {
		return
	}
	burn, err = p.Get(tokenet.KeyTaxShareBurn)
	return
}

// InitDefaults seeds the initial param values. Meant for bootstrap, before
// governance takes over.
func (p *Params) InitDefaults() {
	p.state.SetStructuredStorage(p.addr, tokenet.KeyTaxShareRetained, tokenet.InitialTaxShareRetained)
	p.state.SetStructuredStorage(p.addr, tokenet.KeyTaxShareTreasury, tokenet.InitialTaxShareTreasury)
	p.state.SetStructuredStorage(p.addr, tokenet.KeyTaxShareBurn, tokenet.InitialTaxShareBurn)
	p.state.SetStructuredStorage(p.addr, tokenet.KeyMinTxDelayFloor, new(big.Int).SetUint64(tokenet.MinTxDelayFloor))
}

func (p *Params) requireAdmin(caller tokenet.Address) error {
	ok, err := p.aut.HasRole(caller, authority.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.New(reverts.Unauthorized, "caller is not admin")
	}
	return nil
}
