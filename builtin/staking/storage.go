// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"encoding/binary"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/slot"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	initializedPos    = tokenet.Blake2b([]byte("initialized"))
	rewardTokenPos    = tokenet.Blake2b([]byte("reward-token"))
	rewardPerBlockPos = tokenet.Blake2b([]byte("reward-per-block"))
	startBlockPos     = tokenet.Blake2b([]byte("start-block"))
	endBlockPos       = tokenet.Blake2b([]byte("end-block"))
	totalWeightPos    = tokenet.Blake2b([]byte("total-weight"))
	poolCountPos      = tokenet.Blake2b([]byte("pool-count"))
	withdrawPausedPos = tokenet.Blake2b([]byte("withdraw-paused"))
	claimPausedPos    = tokenet.Blake2b([]byte("claim-paused"))
	poolsPos          = tokenet.Blake2b([]byte("pools"))
	usersPos          = tokenet.Blake2b([]byte("users"))
	assetIndexPos     = tokenet.Blake2b([]byte("asset-index"))
	funcPausedPos     = tokenet.Blake2b([]byte("func-paused"))
)

// userKey addresses one account's position in one pool.
type userKey struct {
	pid  uint32
	addr tokenet.Address
}

func (k userKey) Bytes() []byte {
	b := make([]byte, 4+20)
	binary.BigEndian.PutUint32(b[:4], k.pid)
	copy(b[4:], k.addr.Bytes())
	return b
}

// Staking is the multi-pool staking engine.
type Staking struct {
	ctx *slot.Context
	aut *authority.Authority

	initialized    *slot.Bool
	rewardToken    *slot.Address
	rewardPerBlock *slot.Uint256
	startBlock     *slot.Uint256
	endBlock       *slot.Uint256
	totalWeight    *slot.Uint256
	poolCount      *slot.Uint256
	withdrawPaused *slot.Bool
	claimPaused    *slot.Bool
	pools          *slot.Mapping[slot.Uint32Key, *Pool]
	users          *slot.Mapping[userKey, *UserStake]
	assetIndex     *slot.Mapping[tokenet.Address, uint32]
	funcPaused     *slot.Mapping[slot.Uint32Key, bool]
}

func New(addr tokenet.Address, st *state.State, aut *authority.Authority) *Staking {
	ctx := slot.NewContext(addr, st)
	return &Staking{
		ctx: ctx,
		aut: aut,

		initialized:    slot.NewBool(ctx, initializedPos),
		rewardToken:    slot.NewAddress(ctx, rewardTokenPos),
		rewardPerBlock: slot.NewUint256(ctx, rewardPerBlockPos),
		startBlock:     slot.NewUint256(ctx, startBlockPos),
		endBlock:       slot.NewUint256(ctx, endBlockPos),
		totalWeight:    slot.NewUint256(ctx, totalWeightPos),
		poolCount:      slot.NewUint256(ctx, poolCountPos),
		withdrawPaused: slot.NewBool(ctx, withdrawPausedPos),
		claimPaused:    slot.NewBool(ctx, claimPausedPos),
		pools:          slot.NewMapping[slot.Uint32Key, *Pool](ctx, poolsPos),
		users:          slot.NewMapping[userKey, *UserStake](ctx, usersPos),
		assetIndex:     slot.NewMapping[tokenet.Address, uint32](ctx, assetIndexPos),
		funcPaused:     slot.NewMapping[slot.Uint32Key, bool](ctx, funcPausedPos),
	}
}

// Address returns the staking contract's own address.
func (s *Staking) Address() tokenet.Address {
	return s.ctx.Address()
}

func (s *Staking) requireAdmin(caller tokenet.Address) error {
	ok, err := s.aut.HasRole(caller, authority.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.New(reverts.Unauthorized, "caller is not admin")
	}
	return nil
}

func (s *Staking) getPool(pid uint32) (*Pool, error) {
	pool, err := s.pools.Get(slot.Uint32Key(pid))
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, reverts.New(reverts.NotFound, "invalid pid %d", pid)
	}
	return pool, nil
}

func (s *Staking) setPool(pid uint32, pool *Pool) error {
	return s.pools.Set(slot.Uint32Key(pid), pool)
}

func (s *Staking) getUser(pid uint32, addr tokenet.Address) (*UserStake, error) {
	user, err := s.users.Get(userKey{pid, addr})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return newUserStake(), nil
	}
	return user.normalize(), nil
}

func (s *Staking) setUser(pid uint32, addr tokenet.Address, user *UserStake) error {
	if user.empty() {
		s.users.Delete(userKey{pid, addr})
		return nil
	}
	return s.users.Set(userKey{pid, addr}, user)
}
