// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"

	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	totalMintedKey = tokenet.Blake2b([]byte("total-minted"))
	totalBurnedKey = tokenet.Blake2b([]byte("total-burned"))

	accountKeyCache, _ = lru.New(1024)
)

func accountKey(addr tokenet.Address) tokenet.Bytes32 {
	if cached, ok := accountKeyCache.Get(addr); ok {
		return cached.(tokenet.Bytes32)
	}
	key := tokenet.Blake2b([]byte("a"), addr.Bytes())
	accountKeyCache.Add(addr, key)
	return key
}

func allowanceKey(owner, spender tokenet.Address) tokenet.Bytes32 {
	return tokenet.Blake2b(owner.Bytes(), spender.Bytes())
}

// Token is the fungible token ledger. Balances and allowances live in the
// structured storage of the token address.
type Token struct {
	addr  tokenet.Address
	state *state.State
}

func New(addr tokenet.Address, state *state.State) *Token {
	return &Token{addr, state}
}

// Address returns the ledger's own address.
func (t *Token) Address() tokenet.Address {
	return t.addr
}

func (t *Token) getStorage(key tokenet.Bytes32, val any) error {
	return t.state.GetStructuredStorage(t.addr, key, val)
}

func (t *Token) setStorage(key tokenet.Bytes32, val any) error {
	return t.state.SetStructuredStorage(t.addr, key, val)
}

// TotalSupply returns the circulating supply, minted minus burned.
func (t *Token) TotalSupply() (*big.Int, error) {
	var minted, burned big.Int
	if err := t.getStorage(totalMintedKey, &minted); err != nil {
		return nil, err
	}
	if err := t.getStorage(totalBurnedKey, &burned); err != nil {
		return nil, err
	}
	return minted.Sub(&minted, &burned), nil
}

// TotalBurned returns the cumulative burned amount.
func (t *Token) TotalBurned() (*big.Int, error) {
	var burned big.Int
	if err := t.getStorage(totalBurnedKey, &burned); err != nil {
		return nil, err
	}
	return &burned, nil
}

// BalanceOf returns the token balance of an account.
func (t *Token) BalanceOf(addr tokenet.Address) (*big.Int, error) {
	var bal big.Int
	if err := t.getStorage(accountKey(addr), &bal); err != nil {
		return nil, err
	}
	return &bal, nil
}

func (t *Token) setBalance(addr tokenet.Address, bal *big.Int) error {
	return t.setStorage(accountKey(addr), bal)
}

// Mint credits to with freshly created tokens.
func (t *Token) Mint(to tokenet.Address, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return reverts.New(reverts.InvalidParameter, "mint amount must be positive")
	}
	bal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	if err := t.setBalance(to, bal.Add(bal, amount)); err != nil {
		return err
	}
	var minted big.Int
	if err := t.getStorage(totalMintedKey, &minted); err != nil {
		return err
	}
	return t.setStorage(totalMintedKey, minted.Add(&minted, amount))
}

// Burn destroys amount tokens held by from.
func (t *Token) Burn(from tokenet.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "negative burn amount")
	}
	bal, err := t.BalanceOf(from)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "burn amount exceeds balance")
	}
	if err := t.setBalance(from, bal.Sub(bal, amount)); err != nil {
		return err
	}
	var burned big.Int
	if err := t.getStorage(totalBurnedKey, &burned); err != nil {
		return err
	}
	return t.setStorage(totalBurnedKey, burned.Add(&burned, amount))
}

// Transfer moves amount from one account to another. This is the raw ledger
// move, tax handling happens a layer above.
func (t *Token) Transfer(from, to tokenet.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "negative transfer amount")
	}
	if amount.Sign() == 0 {
		return nil
	}
	fromBal, err := t.BalanceOf(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "transfer amount exceeds balance")
	}
	if err := t.setBalance(from, fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	return t.setBalance(to, toBal.Add(toBal, amount))
}

// Approve sets the allowance of spender over owner's tokens.
func (t *Token) Approve(owner, spender tokenet.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "negative allowance")
	}
	return t.setStorage(allowanceKey(owner, spender), amount)
}

// Allowance returns the remaining allowance of spender over owner's tokens.
func (t *Token) Allowance(owner, spender tokenet.Address) (*big.Int, error) {
	var allowance big.Int
	if err := t.getStorage(allowanceKey(owner, spender), &allowance); err != nil {
		return nil, err
	}
	return &allowance, nil
}

// UseAllowance spends amount of spender's allowance over owner's tokens.
func (t *Token) UseAllowance(owner, spender tokenet.Address, amount *big.Int) error {
	allowance, err := t.Allowance(owner, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientAllowance, "insufficient allowance")
	}
	return t.setStorage(allowanceKey(owner, spender), allowance.Sub(allowance, amount))
}

// TransferFrom moves amount from owner to recipient on behalf of spender,
// consuming allowance.
func (t *Token) TransferFrom(spender, from, to tokenet.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidParameter, "negative transfer amount")
	}
	if err := t.UseAllowance(from, spender, amount); err != nil {
		return err
	}
	return t.Transfer(from, to, amount)
}
