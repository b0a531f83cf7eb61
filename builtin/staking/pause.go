// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/slot"
	"github.com/openledger-labs/tokenet/tokenet"
)

func (k FuncKind) String() string {
	switch k {
	case FuncStake:
		return "stake"
	case FuncUnstake:
		return "unstake"
	case FuncWithdraw:
		return "withdraw"
	case FuncClaim:
		return "claim"
	default:
		return "unknown"
	}
}

// checkPaused fails when the entry point is paused.
func (s *Staking) checkPaused(kind FuncKind) error {
	paused, err := s.funcPaused.Get(slot.Uint32Key(kind))
	if err != nil {
		return err
	}
	if paused {
		return reverts.New(reverts.FunctionPaused, "%s is paused", kind)
	}
	return nil
}

// PauseFunction pauses one entry point.
func (s *Staking) PauseFunction(caller tokenet.Address, kind FuncKind) error {
	return s.setFuncPaused(caller, kind, true)
}

// UnpauseFunction resumes one entry point.
func (s *Staking) UnpauseFunction(caller tokenet.Address, kind FuncKind) error {
	return s.setFuncPaused(caller, kind, false)
}

func (s *Staking) setFuncPaused(caller tokenet.Address, kind FuncKind, paused bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if kind > FuncClaim {
		return reverts.New(reverts.InvalidParameter, "unknown function kind")
	}
	current, err := s.funcPaused.Get(slot.Uint32Key(kind))
	if err != nil {
		return err
	}
	if current == paused {
		if paused {
			return reverts.New(reverts.AlreadyInState, "%s already paused", kind)
		}
		return reverts.New(reverts.AlreadyInState, "%s already unpaused", kind)
	}
	if err := s.funcPaused.Set(slot.Uint32Key(kind), paused); err != nil {
		return err
	}
	logger.Info("function pause toggled", "kind", kind, "paused", paused)
	return nil
}

// PauseWithdraw stops unstakes and withdrawals.
func (s *Staking) PauseWithdraw(caller tokenet.Address) error {
	return s.setWithdrawPaused(caller, true)
}

// UnpauseWithdraw resumes unstakes and withdrawals.
func (s *Staking) UnpauseWithdraw(caller tokenet.Address) error {
	return s.setWithdrawPaused(caller, false)
}

func (s *Staking) setWithdrawPaused(caller tokenet.Address, paused bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if s.withdrawPaused.Get() == paused {
		if paused {
			return reverts.New(reverts.AlreadyInState, "withdraw has been already paused")
		}
		return reverts.New(reverts.AlreadyInState, "withdraw has been already unpaused")
	}
	s.withdrawPaused.Set(paused)
	return nil
}

// PauseClaim stops reward claims.
func (s *Staking) PauseClaim(caller tokenet.Address) error {
	return s.setClaimPaused(caller, true)
}

// UnpauseClaim resumes reward claims.
func (s *Staking) UnpauseClaim(caller tokenet.Address) error {
	return s.setClaimPaused(caller, false)
}

func (s *Staking) setClaimPaused(caller tokenet.Address, paused bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if s.claimPaused.Get() == paused {
		if paused {
			return reverts.New(reverts.AlreadyInState, "claim has been already paused")
		}
		return reverts.New(reverts.AlreadyInState, "claim has been already unpaused")
	}
	s.claimPaused.Set(paused)
	return nil
}
