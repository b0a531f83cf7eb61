// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/token"
	"github.com/openledger-labs/tokenet/metrics"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	metricDeposits    = metrics.CounterVec("staking_deposits_total", []string{"native"})
	metricUnstakes    = metrics.Counter("staking_unstake_requests_total")
	metricWithdrawals = metrics.Counter("staking_withdrawals_total")
	metricClaims      = metrics.Counter("staking_claims_total")
)

// ledger binds a token address to the shared state.
func (s *Staking) ledger(asset tokenet.Address) *token.Token {
	return token.New(asset, s.ctx.State())
}

// Deposit stakes amount of a pool's token. Pool 0 holds native funds and
// rejects this path.
func (s *Staking) Deposit(caller tokenet.Address, pid uint32, amount *big.Int, blockNum uint32) error {
	if err := s.checkPaused(FuncStake); err != nil {
		return err
	}
	pool, err := s.getPool(pid)
	if err != nil {
		return err
	}
	if pool.IsNative {
		return reverts.New(reverts.UseStakeFunction, "pool holds native funds, use DepositNative")
	}
	if amount.Cmp(pool.MinDeposit) < 0 {
		return reverts.New(reverts.BelowMinimum, "deposit amount is too small")
	}
	tok := s.ledger(pool.Asset)
	allowance, err := tok.Allowance(caller, s.Address())
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientAllowance, "insufficient allowance")
	}

	if err := s.accrue(pool, blockNum); err != nil {
		return err
	}
	user, err := s.getUser(pid, caller)
	if err != nil {
		return err
	}
	settle(pool, user)

	if err := tok.TransferFrom(s.Address(), caller, s.Address(), amount); err != nil {
		return err
	}
	user.Amount = new(big.Int).Add(user.Amount, amount)
	pool.TotalStaked = new(big.Int).Add(pool.TotalStaked, amount)
	resetDebt(pool, user)

	if err := s.setPool(pid, pool); err != nil {
		return err
	}
	if err := s.setUser(pid, caller, user); err != nil {
		return err
	}
	metricDeposits.AddWithLabel(1, map[string]string{"native": "false"})
	logger.Info("deposit", "pid", pid, "staker", caller, "amount", amount)
	return nil
}

// DepositNative stakes native funds into pool 0.
func (s *Staking) DepositNative(caller tokenet.Address, amount *big.Int, blockNum uint32) error {
	if err := s.checkPaused(FuncStake); err != nil {
		return err
	}
	pool, err := s.getPool(0)
	if err != nil {
		return err
	}
	if amount.Cmp(pool.MinDeposit) < 0 {
		return reverts.New(reverts.BelowMinimum, "deposit amount is too small")
	}

	if err := s.accrue(pool, blockNum); err != nil {
		return err
	}
	user, err := s.getUser(0, caller)
	if err != nil {
		return err
	}
	settle(pool, user)

	st := s.ctx.State()
	if !st.SubBalance(caller, amount) {
		return reverts.New(reverts.InsufficientBalance, "insufficient native balance")
	}
	st.AddBalance(s.Address(), amount)
	user.Amount = new(big.Int).Add(user.Amount, amount)
	pool.TotalStaked = new(big.Int).Add(pool.TotalStaked, amount)
	resetDebt(pool, user)

	if err := s.setPool(0, pool); err != nil {
		return err
	}
	if err := s.setUser(0, caller, user); err != nil {
		return err
	}
	metricDeposits.AddWithLabel(1, map[string]string{"native": "true"})
	logger.Info("deposit", "pid", 0, "staker", caller, "amount", amount)
	return nil
}

// Unstake moves principal out of the pool into a lock queue. The principal
// stops earning immediately, the funds release UnstakeLockBlocks later.
func (s *Staking) Unstake(caller tokenet.Address, pid uint32, amount *big.Int, blockNum uint32) error {
	if s.withdrawPaused.Get() {
		return reverts.New(reverts.FunctionPaused, "withdraw is paused")
	}
	if err := s.checkPaused(FuncUnstake); err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return reverts.New(reverts.InvalidParameter, "unstake amount must be positive")
	}
	pool, err := s.getPool(pid)
	if err != nil {
		return err
	}
	user, err := s.getUser(pid, caller)
	if err != nil {
		return err
	}
	if user.Amount.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "not enough staked balance")
	}

	if err := s.accrue(pool, blockNum); err != nil {
		return err
	}
	settle(pool, user)

	user.Amount = new(big.Int).Sub(user.Amount, amount)
	pool.TotalStaked = new(big.Int).Sub(pool.TotalStaked, amount)
	user.Requests = append(user.Requests, UnstakeRequest{
		Amount:      amount,
		UnlockBlock: blockNum + pool.UnstakeLockBlocks,
	})
	resetDebt(pool, user)

	if err := s.setPool(pid, pool); err != nil {
		return err
	}
	if err := s.setUser(pid, caller, user); err != nil {
		return err
	}
	metricUnstakes.Add(1)
	logger.Info("unstake requested", "pid", pid, "staker", caller,
		"amount", amount, "unlockBlock", blockNum+pool.UnstakeLockBlocks)
	return nil
}

// Withdraw pays out every matured unstake request. Paying zero when nothing
// has matured is a successful no-op.
func (s *Staking) Withdraw(caller tokenet.Address, pid uint32, blockNum uint32) (*big.Int, error) {
	if s.withdrawPaused.Get() {
		return nil, reverts.New(reverts.FunctionPaused, "withdraw is paused")
	}
	if err := s.checkPaused(FuncWithdraw); err != nil {
		return nil, err
	}
	pool, err := s.getPool(pid)
	if err != nil {
		return nil, err
	}
	user, err := s.getUser(pid, caller)
	if err != nil {
		return nil, err
	}

	matured := new(big.Int)
	remaining := user.Requests[:0]
	for _, req := range user.Requests {
		if req.UnlockBlock <= blockNum {
			matured.Add(matured, req.Amount)
		} else {
			remaining = append(remaining, req)
		}
	}
	if matured.Sign() == 0 {
		return matured, nil
	}
	user.Requests = remaining

	if pool.IsNative {
		st := s.ctx.State()
		if !st.SubBalance(s.Address(), matured) {
			return nil, reverts.New(reverts.InsufficientBalance, "insufficient native balance")
		}
		st.AddBalance(caller, matured)
	} else {
		if err := s.ledger(pool.Asset).Transfer(s.Address(), caller, matured); err != nil {
			return nil, err
		}
	}
	if err := s.setUser(pid, caller, user); err != nil {
		return nil, err
	}
	metricWithdrawals.Add(1)
	logger.Info("withdraw", "pid", pid, "staker", caller, "amount", matured)
	return matured, nil
}

// Claim pays out the caller's accrued reward.
func (s *Staking) Claim(caller tokenet.Address, pid uint32, blockNum uint32) (*big.Int, error) {
	if s.claimPaused.Get() {
		return nil, reverts.New(reverts.FunctionPaused, "claim is paused")
	}
	if err := s.checkPaused(FuncClaim); err != nil {
		return nil, err
	}
	pool, err := s.getPool(pid)
	if err != nil {
		return nil, err
	}
	user, err := s.getUser(pid, caller)
	if err != nil {
		return nil, err
	}

	if err := s.accrue(pool, blockNum); err != nil {
		return nil, err
	}
	reward := entitled(pool, user)
	if reward.Sign() > 0 {
		tok := s.ledger(s.rewardToken.Get())
		bal, err := tok.BalanceOf(s.Address())
		if err != nil {
			return nil, err
		}
		if bal.Cmp(reward) < 0 {
			return nil, reverts.New(reverts.InsufficientBalance, "insufficient reward balance in contract")
		}
		if err := tok.Transfer(s.Address(), caller, reward); err != nil {
			return nil, err
		}
	}
	user.Pending = new(big.Int)
	resetDebt(pool, user)

	if err := s.setPool(pid, pool); err != nil {
		return nil, err
	}
	if err := s.setUser(pid, caller, user); err != nil {
		return nil, err
	}
	metricClaims.Add(1)
	logger.Info("claim", "pid", pid, "staker", caller, "reward", reward)
	return reward, nil
}

// StakingBalance returns the caller's active principal in a pool.
func (s *Staking) StakingBalance(pid uint32, addr tokenet.Address) (*big.Int, error) {
	if _, err := s.getPool(pid); err != nil {
		return nil, err
	}
	user, err := s.getUser(pid, addr)
	if err != nil {
		return nil, err
	}
	return user.Amount, nil
}

// WithdrawAmount returns the total queued principal and the part of it that
// has matured at blockNum.
func (s *Staking) WithdrawAmount(pid uint32, addr tokenet.Address, blockNum uint32) (requested, matured *big.Int, err error) {
	if _, err = s.getPool(pid); err != nil {
		return nil, nil, err
	}
	user, err := s.getUser(pid, addr)
	if err != nil {
		return nil, nil, err
	}
	requested = new(big.Int)
	matured = new(big.Int)
	for _, req := range user.Requests {
		requested.Add(requested, req.Amount)
		if req.UnlockBlock <= blockNum {
			matured.Add(matured, req.Amount)
		}
	}
	return requested, matured, nil
}

// ReceiveNative rejects plain native transfers to the staking contract.
func (s *Staking) ReceiveNative() error {
	return reverts.New(reverts.UseStakeFunction, "use DepositNative to stake native funds")
}

// RecoverReward moves reward tokens out of the contract, capped at its
// balance. Admin escape hatch.
func (s *Staking) RecoverReward(caller, to tokenet.Address, amount *big.Int) (*big.Int, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	tok := s.ledger(s.rewardToken.Get())
	bal, err := tok.BalanceOf(s.Address())
	if err != nil {
		return nil, err
	}
	if amount.Cmp(bal) > 0 {
		amount = bal
	}
	if err := tok.Transfer(s.Address(), to, amount); err != nil {
		return nil, err
	}
	logger.Info("reward recovered", "to", to, "amount", amount)
	return amount, nil
}
