// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bps implements fixed-point basis-point fee arithmetic.
package bps

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/openledger-labs/tokenet/tokenet"
)

// Split computes the fee taken from amount at the given basis-point rate and
// the remaining net amount. The fee rounds down, so fee + net == amount exactly
// and the effective rate never exceeds the nominal one.
//
// It panics on a negative amount, an amount wider than 256 bits, or a rate
// above the denominator; callers validate rates against tokenet.MaxTaxBps.
func Split(amount *big.Int, rate uint16) (fee, net *big.Int) {
	if rate > tokenet.TaxDenominator {
		panic("bps: rate exceeds denominator")
	}
	a, overflow := uint256.FromBig(amount)
	if overflow || amount.Sign() < 0 {
		panic("bps: amount out of range")
	}
	if rate == 0 || a.IsZero() {
		return new(big.Int), new(big.Int).Set(amount)
	}

	f := new(uint256.Int).Mul(a, uint256.NewInt(uint64(rate)))
	f.Div(f, uint256.NewInt(uint64(tokenet.TaxDenominator)))

	n := new(uint256.Int).Sub(a, f)
	return f.ToBig(), n.ToBig()
}

// Share takes a sub-portion of fee at the given basis-point share.
// Used to divide a collected fee between its destinations.
func Share(fee *big.Int, share *big.Int) *big.Int {
	x := new(big.Int).Mul(fee, share)
	return x.Div(x, big.NewInt(int64(tokenet.TaxDenominator)))
}
