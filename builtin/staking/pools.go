// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/log"
	"github.com/openledger-labs/tokenet/tokenet"
)

var logger = log.WithContext("pkg", "staking")

// Initialize sets the emission schedule. Can only be called once, by admin.
func (s *Staking) Initialize(caller, rewardToken tokenet.Address, rewardPerBlock *big.Int, startBlock, endBlock uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if s.initialized.Get() {
		return reverts.New(reverts.AlreadyInState, "already initialized")
	}
	if startBlock >= endBlock {
		return reverts.New(reverts.InvalidParameter, "start block must be smaller than end block")
	}
	if rewardPerBlock.Sign() <= 0 {
		return reverts.New(reverts.InvalidParameter, "invalid reward per block")
	}
	s.initialized.Set(true)
	s.rewardToken.Set(rewardToken)
	s.rewardPerBlock.Set(rewardPerBlock)
	s.startBlock.Set(new(big.Int).SetUint64(uint64(startBlock)))
	s.endBlock.Set(new(big.Int).SetUint64(uint64(endBlock)))
	logger.Info("staking initialized",
		"rewardToken", rewardToken, "rewardPerBlock", rewardPerBlock,
		"startBlock", startBlock, "endBlock", endBlock)
	return nil
}

// AddPool registers a new staking pool. The first pool must hold the native
// asset, every later pool a distinct token.
func (s *Staking) AddPool(caller, asset tokenet.Address, isNative bool, weight uint64, minDeposit *big.Int, lockBlocks uint32, withUpdate bool, blockNum uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if weight == 0 {
		return reverts.New(reverts.InvalidParameter, "pool weight must be positive")
	}
	count := uint32(s.poolCount.Get().Uint64())
	if count == 0 && !isNative {
		return reverts.New(reverts.OrderingViolation, "first pool must hold the native asset")
	}
	if count > 0 && isNative {
		return reverts.New(reverts.DuplicateAsset, "native pool already exists")
	}
	if isNative {
		// native pool is keyed by the zero address
		asset = tokenet.Address{}
	} else if asset.IsZero() {
		return reverts.New(reverts.InvalidParameter, "zero asset address")
	}
	if s.assetIndex.Has(asset) {
		return reverts.New(reverts.DuplicateAsset, "duplicate staking token")
	}
	if minDeposit == nil || minDeposit.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "invalid min deposit")
	}
	if lockBlocks > tokenet.MaxUnstakeLockBlocks {
		return reverts.New(reverts.InvalidParameter, "unstake lock exceeds %d blocks", tokenet.MaxUnstakeLockBlocks)
	}

	if withUpdate {
		if err := s.MassUpdatePools(blockNum); err != nil {
			return err
		}
	}

	last := blockNum
	if start := uint32(s.startBlock.Get().Uint64()); last < start {
		last = start
	}
	pool := &Pool{
		Asset:             asset,
		IsNative:          isNative,
		Weight:            weight,
		MinDeposit:        minDeposit,
		UnstakeLockBlocks: lockBlocks,
		TotalStaked:       new(big.Int),
		LastRewardBlock:   last,
		AccRewardPerShare: new(big.Int),
	}
	if err := s.setPool(count, pool); err != nil {
		return err
	}
	if err := s.assetIndex.Set(asset, count); err != nil {
		return err
	}
	s.poolCount.Set(new(big.Int).SetUint64(uint64(count + 1)))
	s.totalWeight.Add(new(big.Int).SetUint64(weight))
	logger.Info("pool added", "pid", count, "asset", asset, "native", isNative, "weight", weight)
	return nil
}

// UpdatePoolConfig changes the minimum deposit and the unstake lock of a
// pool. Already queued requests keep their unlock blocks.
func (s *Staking) UpdatePoolConfig(caller tokenet.Address, pid uint32, minDeposit *big.Int, lockBlocks uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	pool, err := s.getPool(pid)
	if err != nil {
		return err
	}
	if minDeposit == nil || minDeposit.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "invalid min deposit")
	}
	if lockBlocks > tokenet.MaxUnstakeLockBlocks {
		return reverts.New(reverts.InvalidParameter, "unstake lock exceeds %d blocks", tokenet.MaxUnstakeLockBlocks)
	}
	pool.MinDeposit = minDeposit
	pool.UnstakeLockBlocks = lockBlocks
	return s.setPool(pid, pool)
}

// SetPoolWeight changes a pool's share of the emission.
func (s *Staking) SetPoolWeight(caller tokenet.Address, pid uint32, weight uint64, withUpdate bool, blockNum uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if weight == 0 {
		return reverts.New(reverts.InvalidParameter, "pool weight must be positive")
	}
	if _, err := s.getPool(pid); err != nil {
		return err
	}
	if withUpdate {
		if err := s.MassUpdatePools(blockNum); err != nil {
			return err
		}
	}
	// re-read after accrual so the stored AccRewardPerShare and
	// LastRewardBlock survive the weight change
	pool, err := s.getPool(pid)
	if err != nil {
		return err
	}
	s.totalWeight.Sub(new(big.Int).SetUint64(pool.Weight))
	s.totalWeight.Add(new(big.Int).SetUint64(weight))
	pool.Weight = weight
	return s.setPool(pid, pool)
}

// SetRewardToken points claims at a different reward ledger.
func (s *Staking) SetRewardToken(caller, rewardToken tokenet.Address) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	s.rewardToken.Set(rewardToken)
	return nil
}

// SetRewardPerBlock changes the global emission rate.
func (s *Staking) SetRewardPerBlock(caller tokenet.Address, rewardPerBlock *big.Int, blockNum uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if rewardPerBlock.Sign() <= 0 {
		return reverts.New(reverts.InvalidParameter, "invalid parameter")
	}
	if err := s.MassUpdatePools(blockNum); err != nil {
		return err
	}
	s.rewardPerBlock.Set(rewardPerBlock)
	return nil
}

// SetStartBlock moves the start of the emission window.
func (s *Staking) SetStartBlock(caller tokenet.Address, startBlock uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if uint64(startBlock) >= s.endBlock.Get().Uint64() {
		return reverts.New(reverts.InvalidParameter, "start block must be smaller than end block")
	}
	s.startBlock.Set(new(big.Int).SetUint64(uint64(startBlock)))
	return nil
}

// SetEndBlock moves the end of the emission window.
func (s *Staking) SetEndBlock(caller tokenet.Address, endBlock uint32) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if s.startBlock.Get().Uint64() >= uint64(endBlock) {
		return reverts.New(reverts.InvalidParameter, "start block must be smaller than end block")
	}
	s.endBlock.Set(new(big.Int).SetUint64(uint64(endBlock)))
	return nil
}

// PoolCount returns the number of registered pools.
func (s *Staking) PoolCount() uint32 {
	return uint32(s.poolCount.Get().Uint64())
}

// GetPool returns a pool by id.
func (s *Staking) GetPool(pid uint32) (*Pool, error) {
	return s.getPool(pid)
}

// RewardToken returns the ledger rewards are paid in.
func (s *Staking) RewardToken() tokenet.Address {
	return s.rewardToken.Get()
}
