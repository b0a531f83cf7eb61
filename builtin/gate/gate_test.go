// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gate_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/gate"
	"github.com/openledger-labs/tokenet/builtin/params"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/tax"
	"github.com/openledger-labs/tokenet/builtin/token"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	admin    = tokenet.BytesToAddress([]byte("admin"))
	alice    = tokenet.BytesToAddress([]byte("alice"))
	bob      = tokenet.BytesToAddress([]byte("bob"))
	pair     = tokenet.BytesToAddress([]byte("pair"))
	treasury = tokenet.BytesToAddress([]byte("treasury"))
)

type fixture struct {
	tok  *token.Token
	gov  *tax.TaxGovernor
	aut  *authority.Authority
	gate *gate.TransferGate
}

func newFixture(t *testing.T) *fixture {
	st := state.New()
	aut := authority.New(tokenet.BytesToAddress([]byte("authority-addr")), st)
	require.NoError(t, aut.Initialize(admin))
	par := params.New(tokenet.BytesToAddress([]byte("params-addr")), st, aut)
	par.InitDefaults()
	gov := tax.New(tokenet.BytesToAddress([]byte("tax-addr")), st, aut, par)
	require.NoError(t, gov.Initialize(10))
	tok := token.New(tokenet.BytesToAddress([]byte("token-addr")), st)
	require.NoError(t, tok.Mint(alice, big.NewInt(1_000_000)))
	require.NoError(t, tok.Mint(pair, big.NewInt(1_000_000)))

	return &fixture{
		tok:  tok,
		gov:  gov,
		aut:  aut,
		gate: gate.New(tok, gov, aut, par, pair, treasury),
	}
}

func (f *fixture) balance(t *testing.T, addr tokenet.Address) *big.Int {
	bal, err := f.tok.BalanceOf(addr)
	require.NoError(t, err)
	return bal
}

func TestWhitelistedTransferNoFee(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.aut.SetWhitelisted(admin, alice, true))

	// whitelisted sender, arbitrary recipient, through the pair
	require.NoError(t, f.gate.Transfer(alice, pair, big.NewInt(10_000), 1000))
	assert.Equal(t, big.NewInt(990_000), f.balance(t, alice))
	assert.Equal(t, big.NewInt(1_010_000), f.balance(t, pair))
	assert.Equal(t, big.NewInt(0).Sign(), f.balance(t, treasury).Sign())

	// exempt path stamps the wallet, never the pair
	last, err := f.gov.LastTx(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), last)
	last, err = f.gov.LastTx(pair)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), last)
}

func TestSellTax(t *testing.T) {
	f := newFixture(t)

	// sell: non-exempt → pair at default 1000 bps
	require.NoError(t, f.gate.Transfer(alice, pair, big.NewInt(10_000), 1000))

	// fee 1000, split 40/30/30
	assert.Equal(t, big.NewInt(990_000), f.balance(t, alice))
	assert.Equal(t, big.NewInt(1_009_000), f.balance(t, pair))
	assert.Equal(t, big.NewInt(300), f.balance(t, treasury))
	assert.Equal(t, big.NewInt(400), f.balance(t, f.tok.Address()))

	burned, err := f.tok.TotalBurned()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(300), burned)
}

func TestBuyTax(t *testing.T) {
	f := newFixture(t)

	// buy: pair → non-exempt at default 500 bps
	require.NoError(t, f.gate.Transfer(pair, bob, big.NewInt(10_000), 1000))

	assert.Equal(t, big.NewInt(990_000), f.balance(t, pair))
	assert.Equal(t, big.NewInt(9_500), f.balance(t, bob))
	assert.Equal(t, big.NewInt(150), f.balance(t, treasury))
	assert.Equal(t, big.NewInt(200), f.balance(t, f.tok.Address()))

	burned, err := f.tok.TotalBurned()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(150), burned)
}

func TestWalletToWalletUntaxed(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.gate.Transfer(alice, bob, big.NewInt(10_000), 1000))
	assert.Equal(t, big.NewInt(990_000), f.balance(t, alice))
	assert.Equal(t, big.NewInt(10_000), f.balance(t, bob))
	assert.Equal(t, 0, f.balance(t, treasury).Sign())
}

func TestCooldown(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.gate.Transfer(alice, bob, big.NewInt(100), 1000))

	// both sides are on cooldown
	err := f.gate.Transfer(alice, pair, big.NewInt(100), 1005)
	assert.True(t, reverts.Is(err, reverts.TooFrequent))
	err = f.gate.Transfer(pair, bob, big.NewInt(100), 1005)
	assert.True(t, reverts.Is(err, reverts.TooFrequent))

	// window elapsed
	require.NoError(t, f.gate.Transfer(alice, bob, big.NewInt(100), 1010))

	// whitelisted counterparty bypasses the cooldown entirely
	require.NoError(t, f.aut.SetWhitelisted(admin, treasury, true))
	require.NoError(t, f.gate.Transfer(alice, treasury, big.NewInt(100), 1011))
}

func TestPairNotThrottled(t *testing.T) {
	f := newFixture(t)

	// the pair trades with many wallets inside one cooldown window
	require.NoError(t, f.gate.Transfer(pair, alice, big.NewInt(100), 1000))
	require.NoError(t, f.gate.Transfer(pair, bob, big.NewInt(100), 1005))
	require.NoError(t, f.gate.Transfer(bob, pair, big.NewInt(50), 1016))

	// each wallet is still on its own cooldown
	err := f.gate.Transfer(alice, bob, big.NewInt(10), 1005)
	assert.True(t, reverts.Is(err, reverts.TooFrequent))

	last, err := f.gov.LastTx(pair)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), last)
}

func TestZeroAmount(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.gate.Transfer(alice, pair, big.NewInt(0), 1000))
	assert.Equal(t, big.NewInt(1_000_000), f.balance(t, alice))

	// checks still ran: both sides stamped
	err := f.gate.Transfer(alice, bob, big.NewInt(10), 1001)
	assert.True(t, reverts.Is(err, reverts.TooFrequent))
}

func TestTransferFrom(t *testing.T) {
	f := newFixture(t)
	spender := tokenet.BytesToAddress([]byte("spender"))

	err := f.gate.TransferFrom(spender, alice, pair, big.NewInt(10_000), 1000)
	assert.True(t, reverts.Is(err, reverts.InsufficientAllowance))

	require.NoError(t, f.tok.Approve(alice, spender, big.NewInt(10_000)))
	require.NoError(t, f.gate.TransferFrom(spender, alice, pair, big.NewInt(10_000), 1000))

	allowance, err := f.tok.Allowance(alice, spender)
	require.NoError(t, err)
	assert.Equal(t, 0, allowance.Sign())
	assert.Equal(t, big.NewInt(1_009_000), f.balance(t, pair))
}

func TestFeeConservation(t *testing.T) {
	f := newFixture(t)

	// odd amount forces rounding in every split
	amount := big.NewInt(9_999)
	require.NoError(t, f.gate.Transfer(alice, pair, amount, 1000))

	supply, err := f.tok.TotalSupply()
	require.NoError(t, err)
	burned, err := f.tok.TotalBurned()
	require.NoError(t, err)

	total := new(big.Int).Set(f.balance(t, alice))
	total.Add(total, f.balance(t, pair))
	total.Add(total, f.balance(t, treasury))
	total.Add(total, f.balance(t, f.tok.Address()))
	total.Add(total, burned)

	// nothing leaked: balances plus burn add back to the minted amount
	assert.Equal(t, new(big.Int).Add(supply, burned), total)
	assert.Equal(t, big.NewInt(2_000_000), total)
}

func TestHugeTransfer(t *testing.T) {
	f := newFixture(t)

	// a fee wider than int64 moves exactly, whatever the counters do
	amount, _ := new(big.Int).SetString("200000000000000000000", 10)
	require.NoError(t, f.tok.Mint(alice, amount))
	require.NoError(t, f.gate.Transfer(alice, pair, amount, 1000))

	fee := new(big.Int).Div(new(big.Int).Mul(amount, big.NewInt(1000)), big.NewInt(10000))
	net := new(big.Int).Sub(amount, fee)
	assert.Equal(t, new(big.Int).Add(big.NewInt(1_000_000), net), f.balance(t, pair))
	assert.Equal(t, big.NewInt(1_000_000), f.balance(t, alice))
}
