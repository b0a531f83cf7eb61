// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"math/big"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/staking"
	"github.com/openledger-labs/tokenet/tokenet"
)

// Token surface.

func (e *Engine) Transfer(from, to tokenet.Address, amount *big.Int) error {
	return e.run("transfer", func() error {
		return e.gate.Transfer(from, to, amount, e.blockTime)
	})
}

func (e *Engine) TransferFrom(spender, from, to tokenet.Address, amount *big.Int) error {
	return e.run("transferFrom", func() error {
		return e.gate.TransferFrom(spender, from, to, amount, e.blockTime)
	})
}

func (e *Engine) Approve(owner, spender tokenet.Address, amount *big.Int) error {
	return e.run("approve", func() error {
		return e.token.Approve(owner, spender, amount)
	})
}

func (e *Engine) BalanceOf(addr tokenet.Address) (bal *big.Int, err error) {
	err = e.view(func() error {
		bal, err = e.token.BalanceOf(addr)
		return err
	})
	return
}

func (e *Engine) Allowance(owner, spender tokenet.Address) (allowance *big.Int, err error) {
	err = e.view(func() error {
		allowance, err = e.token.Allowance(owner, spender)
		return err
	})
	return
}

func (e *Engine) TotalSupply() (supply *big.Int, err error) {
	err = e.view(func() error {
		supply, err = e.token.TotalSupply()
		return err
	})
	return
}

func (e *Engine) TotalBurned() (burned *big.Int, err error) {
	err = e.view(func() error {
		burned, err = e.token.TotalBurned()
		return err
	})
	return
}

// Tax governance surface.

func (e *Engine) ProposeTax(caller tokenet.Address, buy, sell uint16) error {
	return e.run("proposeTax", func() error {
		return e.tax.Propose(caller, buy, sell, e.blockTime)
	})
}

func (e *Engine) ExecuteTax(caller tokenet.Address, buy, sell uint16, proposedAt uint64) error {
	return e.run("executeTax", func() error {
		return e.tax.Execute(caller, buy, sell, proposedAt, e.blockTime)
	})
}

func (e *Engine) GetTax() (buy, sell uint16) {
	_ = e.view(func() error {
		buy, sell = e.tax.GetTax()
		return nil
	})
	return
}

func (e *Engine) SetMinTxDelay(caller tokenet.Address, delay uint64) error {
	return e.run("setMinTxDelay", func() error {
		return e.tax.SetMinTxDelay(caller, delay)
	})
}

func (e *Engine) MinTxDelay() (delay uint64) {
	_ = e.view(func() error {
		delay = e.tax.MinTxDelay()
		return nil
	})
	return
}

// Access registry surface.

func (e *Engine) GrantRole(caller, target tokenet.Address, role authority.Role) error {
	return e.run("grantRole", func() error {
		return e.authority.GrantRole(caller, target, role)
	})
}

func (e *Engine) RevokeRole(caller, target tokenet.Address, role authority.Role) error {
	return e.run("revokeRole", func() error {
		return e.authority.RevokeRole(caller, target, role)
	})
}

func (e *Engine) SetWhitelisted(caller, target tokenet.Address, on bool) error {
	return e.run("setWhitelisted", func() error {
		return e.authority.SetWhitelisted(caller, target, on)
	})
}

func (e *Engine) SetTaxExempt(caller, target tokenet.Address, on bool) error {
	return e.run("setTaxExempt", func() error {
		return e.authority.SetTaxExempt(caller, target, on)
	})
}

func (e *Engine) IsWhitelisted(addr tokenet.Address) (on bool, err error) {
	err = e.view(func() error {
		on, err = e.authority.IsWhitelisted(addr)
		return err
	})
	return
}

func (e *Engine) IsTaxExempt(addr tokenet.Address) (on bool, err error) {
	err = e.view(func() error {
		on, err = e.authority.IsTaxExempt(addr)
		return err
	})
	return
}

// Params surface.

func (e *Engine) SetParam(caller tokenet.Address, key tokenet.Bytes32, value *big.Int) error {
	return e.run("setParam", func() error {
		return e.params.Set(caller, key, value)
	})
}

func (e *Engine) GetParam(key tokenet.Bytes32) (value *big.Int, err error) {
	err = e.view(func() error {
		value, err = e.params.Get(key)
		return err
	})
	return
}

func (e *Engine) SetFeeShares(caller tokenet.Address, retained, treasury, burn *big.Int) error {
	return e.run("setFeeShares", func() error {
		return e.params.SetFeeShares(caller, retained, treasury, burn)
	})
}

// Liquidity surface.

func (e *Engine) AddInitialLiquidity(caller tokenet.Address, tokenAmount, nativeAmount *big.Int) error {
	return e.run("addInitialLiquidity", func() error {
		return e.liquidity.AddInitialLiquidity(caller, tokenAmount, nativeAmount)
	})
}

func (e *Engine) LiquiditySeeded() (seeded bool) {
	_ = e.view(func() error {
		seeded = e.liquidity.Seeded()
		return nil
	})
	return
}

// FundLiquidity moves deployer tokens and native funds into the bootstrap
// contract ahead of seeding.
func (e *Engine) FundLiquidity(from tokenet.Address, tokenAmount, nativeAmount *big.Int) error {
	return e.run("fundLiquidity", func() error {
		if err := e.token.Transfer(from, LiquidityAddress, tokenAmount); err != nil {
			return err
		}
		e.st.AddBalance(LiquidityAddress, nativeAmount)
		return nil
	})
}

// Staking surface.

func (e *Engine) AddPool(caller, asset tokenet.Address, isNative bool, weight uint64, minDeposit *big.Int, lockBlocks uint32, withUpdate bool) error {
	return e.run("addPool", func() error {
		return e.staking.AddPool(caller, asset, isNative, weight, minDeposit, lockBlocks, withUpdate, e.blockNum)
	})
}

func (e *Engine) UpdatePoolConfig(caller tokenet.Address, pid uint32, minDeposit *big.Int, lockBlocks uint32) error {
	return e.run("updatePoolConfig", func() error {
		return e.staking.UpdatePoolConfig(caller, pid, minDeposit, lockBlocks)
	})
}

func (e *Engine) SetPoolWeight(caller tokenet.Address, pid uint32, weight uint64, withUpdate bool) error {
	return e.run("setPoolWeight", func() error {
		return e.staking.SetPoolWeight(caller, pid, weight, withUpdate, e.blockNum)
	})
}

func (e *Engine) SetRewardToken(caller, rewardToken tokenet.Address) error {
	return e.run("setRewardToken", func() error {
		return e.staking.SetRewardToken(caller, rewardToken)
	})
}

func (e *Engine) SetRewardPerBlock(caller tokenet.Address, rewardPerBlock *big.Int) error {
	return e.run("setRewardPerBlock", func() error {
		return e.staking.SetRewardPerBlock(caller, rewardPerBlock, e.blockNum)
	})
}

func (e *Engine) SetStartBlock(caller tokenet.Address, startBlock uint32) error {
	return e.run("setStartBlock", func() error {
		return e.staking.SetStartBlock(caller, startBlock)
	})
}

func (e *Engine) SetEndBlock(caller tokenet.Address, endBlock uint32) error {
	return e.run("setEndBlock", func() error {
		return e.staking.SetEndBlock(caller, endBlock)
	})
}

func (e *Engine) PauseWithdraw(caller tokenet.Address) error {
	return e.run("pauseWithdraw", func() error { return e.staking.PauseWithdraw(caller) })
}

func (e *Engine) UnpauseWithdraw(caller tokenet.Address) error {
	return e.run("unpauseWithdraw", func() error { return e.staking.UnpauseWithdraw(caller) })
}

func (e *Engine) PauseClaim(caller tokenet.Address) error {
	return e.run("pauseClaim", func() error { return e.staking.PauseClaim(caller) })
}

func (e *Engine) UnpauseClaim(caller tokenet.Address) error {
	return e.run("unpauseClaim", func() error { return e.staking.UnpauseClaim(caller) })
}

func (e *Engine) PauseFunction(caller tokenet.Address, kind staking.FuncKind) error {
	return e.run("pauseFunction", func() error { return e.staking.PauseFunction(caller, kind) })
}

func (e *Engine) UnpauseFunction(caller tokenet.Address, kind staking.FuncKind) error {
	return e.run("unpauseFunction", func() error { return e.staking.UnpauseFunction(caller, kind) })
}

func (e *Engine) Deposit(caller tokenet.Address, pid uint32, amount *big.Int) error {
	return e.run("deposit", func() error {
		return e.staking.Deposit(caller, pid, amount, e.blockNum)
	})
}

func (e *Engine) DepositNative(caller tokenet.Address, amount *big.Int) error {
	return e.run("depositNative", func() error {
		return e.staking.DepositNative(caller, amount, e.blockNum)
	})
}

func (e *Engine) Unstake(caller tokenet.Address, pid uint32, amount *big.Int) error {
	return e.run("unstake", func() error {
		return e.staking.Unstake(caller, pid, amount, e.blockNum)
	})
}

func (e *Engine) Withdraw(caller tokenet.Address, pid uint32) (paid *big.Int, err error) {
	err = e.run("withdraw", func() error {
		paid, err = e.staking.Withdraw(caller, pid, e.blockNum)
		return err
	})
	return
}

func (e *Engine) Claim(caller tokenet.Address, pid uint32) (reward *big.Int, err error) {
	err = e.run("claim", func() error {
		reward, err = e.staking.Claim(caller, pid, e.blockNum)
		return err
	})
	return
}

func (e *Engine) PoolCount() (count uint32) {
	_ = e.view(func() error {
		count = e.staking.PoolCount()
		return nil
	})
	return
}

func (e *Engine) GetPool(pid uint32) (pool *staking.Pool, err error) {
	err = e.view(func() error {
		pool, err = e.staking.GetPool(pid)
		return err
	})
	return
}

func (e *Engine) StakingBalance(pid uint32, addr tokenet.Address) (staked *big.Int, err error) {
	err = e.view(func() error {
		staked, err = e.staking.StakingBalance(pid, addr)
		return err
	})
	return
}

func (e *Engine) PendingReward(pid uint32, addr tokenet.Address) (pending *big.Int, err error) {
	err = e.view(func() error {
		pending, err = e.staking.PendingRewardAt(pid, addr, e.blockNum)
		return err
	})
	return
}

func (e *Engine) WithdrawAmount(pid uint32, addr tokenet.Address) (requested, matured *big.Int, err error) {
	err = e.view(func() error {
		requested, matured, err = e.staking.WithdrawAmount(pid, addr, e.blockNum)
		return err
	})
	return
}

func (e *Engine) RecoverReward(caller, to tokenet.Address, amount *big.Int) (paid *big.Int, err error) {
	err = e.run("recoverReward", func() error {
		paid, err = e.staking.RecoverReward(caller, to, amount)
		return err
	})
	return
}

// FundStakingRewards moves tokens from an account into the staking contract
// to back future claims.
func (e *Engine) FundStakingRewards(from tokenet.Address, amount *big.Int) error {
	return e.run("fundStakingRewards", func() error {
		return e.token.Transfer(from, StakingAddress, amount)
	})
}

// NativeBalance returns the native funds of an address.
func (e *Engine) NativeBalance(addr tokenet.Address) (bal *big.Int) {
	_ = e.view(func() error {
		bal = e.st.GetBalance(addr)
		return nil
	})
	return
}

// AddNativeBalance credits native funds, the simulation's faucet.
func (e *Engine) AddNativeBalance(addr tokenet.Address, amount *big.Int) {
	_ = e.run("addNativeBalance", func() error {
		e.st.AddBalance(addr, amount)
		return nil
	})
}
