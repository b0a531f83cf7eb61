// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/tokenet"
)

// Multiplier returns the total emission between two blocks, clamped to the
// reward window.
func (s *Staking) Multiplier(from, to uint32) (*big.Int, error) {
	if from > to {
		return nil, reverts.New(reverts.InvalidParameter, "invalid block range")
	}
	start := uint32(s.startBlock.Get().Uint64())
	end := uint32(s.endBlock.Get().Uint64())
	if from < start {
		from = start
	}
	if to > end {
		to = end
	}
	if from >= to {
		return new(big.Int), nil
	}
	blocks := new(big.Int).SetUint64(uint64(to - from))
	return blocks.Mul(blocks, s.rewardPerBlock.Get()), nil
}

// UpdatePool accrues emission for one pool up to blockNum.
func (s *Staking) UpdatePool(pid, blockNum uint32) error {
	pool, err := s.getPool(pid)
	if err != nil {
		return err
	}
	if err := s.accrue(pool, blockNum); err != nil {
		return err
	}
	return s.setPool(pid, pool)
}

// MassUpdatePools accrues emission for every pool.
func (s *Staking) MassUpdatePools(blockNum uint32) error {
	count := s.PoolCount()
	for pid := uint32(0); pid < count; pid++ {
		if err := s.UpdatePool(pid, blockNum); err != nil {
			return err
		}
	}
	return nil
}

// accrue folds emission since the pool's last reward block into its
// accumulator.
func (s *Staking) accrue(pool *Pool, blockNum uint32) error {
	if blockNum <= pool.LastRewardBlock {
		return nil
	}
	if pool.TotalStaked.Sign() == 0 {
		pool.LastRewardBlock = blockNum
		return nil
	}
	reward, err := s.poolReward(pool, pool.LastRewardBlock, blockNum)
	if err != nil {
		return err
	}
	delta := reward.Mul(reward, tokenet.RewardPrecision)
	delta.Div(delta, pool.TotalStaked)
	pool.AccRewardPerShare = new(big.Int).Add(pool.AccRewardPerShare, delta)
	pool.LastRewardBlock = blockNum
	return nil
}

// poolReward is the pool's weighted share of emission over a block range.
func (s *Staking) poolReward(pool *Pool, from, to uint32) (*big.Int, error) {
	mult, err := s.Multiplier(from, to)
	if err != nil {
		return nil, err
	}
	totalWeight := s.totalWeight.Get()
	if totalWeight.Sign() == 0 {
		return new(big.Int), nil
	}
	mult.Mul(mult, new(big.Int).SetUint64(pool.Weight))
	return mult.Div(mult, totalWeight), nil
}

// entitled is the user's total accrued reward against the pool accumulator.
func entitled(pool *Pool, user *UserStake) *big.Int {
	earned := new(big.Int).Mul(user.Amount, pool.AccRewardPerShare)
	earned.Div(earned, tokenet.RewardPrecision)
	earned.Sub(earned, user.RewardDebt)
	return earned.Add(earned, user.Pending)
}

// settle moves the user's accrued reward into Pending. The pool must be
// accrued first.
func settle(pool *Pool, user *UserStake) {
	user.Pending = entitled(pool, user)
}

// resetDebt snapshots the accumulator after a principal change.
func resetDebt(pool *Pool, user *UserStake) {
	debt := new(big.Int).Mul(user.Amount, pool.AccRewardPerShare)
	user.RewardDebt = debt.Div(debt, tokenet.RewardPrecision)
}

// PendingReward returns the reward claimable as of the pool's last accrual.
func (s *Staking) PendingReward(pid uint32, addr tokenet.Address) (*big.Int, error) {
	pool, err := s.getPool(pid)
	if err != nil {
		return nil, err
	}
	user, err := s.getUser(pid, addr)
	if err != nil {
		return nil, err
	}
	return entitled(pool, user), nil
}

// PendingRewardAt projects the claimable reward at blockNum without touching
// state.
func (s *Staking) PendingRewardAt(pid uint32, addr tokenet.Address, blockNum uint32) (*big.Int, error) {
	pool, err := s.getPool(pid)
	if err != nil {
		return nil, err
	}
	user, err := s.getUser(pid, addr)
	if err != nil {
		return nil, err
	}
	if err := s.accrue(pool, blockNum); err != nil {
		return nil, err
	}
	return entitled(pool, user), nil
}
