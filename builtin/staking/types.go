// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/openledger-labs/tokenet/tokenet"
)

// FuncKind identifies a pausable entry point.
type FuncKind uint32

const (
	FuncStake FuncKind = iota
	FuncUnstake
	FuncWithdraw
	FuncClaim
)

// Pool is one staking bucket. Pool 0 always holds the native asset, every
// other pool holds a distinct token.
type Pool struct {
	Asset             tokenet.Address
	IsNative          bool
	Weight            uint64
	MinDeposit        *big.Int
	UnstakeLockBlocks uint32
	TotalStaked       *big.Int
	LastRewardBlock   uint32
	AccRewardPerShare *big.Int
}

// UnstakeRequest is principal waiting out its lock. The unlock block is
// frozen at request time, later lock changes do not touch it.
type UnstakeRequest struct {
	Amount      *big.Int
	UnlockBlock uint32
}

// UserStake is one account's position in one pool.
type UserStake struct {
	Amount     *big.Int
	RewardDebt *big.Int
	Pending    *big.Int
	Requests   []UnstakeRequest
}

func newUserStake() *UserStake {
	return &UserStake{
		Amount:     new(big.Int),
		RewardDebt: new(big.Int),
		Pending:    new(big.Int),
	}
}

// empty reports whether the position is fully wound down and its record can
// be cleared.
func (u *UserStake) empty() bool {
	return u.Amount.Sign() == 0 && u.Pending.Sign() == 0 && len(u.Requests) == 0
}

// normalize fills nil big fields after an RLP round trip of a fresh record.
func (u *UserStake) normalize() *UserStake {
	if u.Amount == nil {
		u.Amount = new(big.Int)
	}
	if u.RewardDebt == nil {
		u.RewardDebt = new(big.Int)
	}
	if u.Pending == nil {
		u.Pending = new(big.Int)
	}
	return u
}
