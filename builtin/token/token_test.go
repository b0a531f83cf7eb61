// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/token"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	alice = tokenet.BytesToAddress([]byte("alice"))
	bob   = tokenet.BytesToAddress([]byte("bob"))
	carol = tokenet.BytesToAddress([]byte("carol"))
)

func newToken() *token.Token {
	return token.New(tokenet.BytesToAddress([]byte("token-addr")), state.New())
}

func balanceOf(t *testing.T, tok *token.Token, addr tokenet.Address) *big.Int {
	bal, err := tok.BalanceOf(addr)
	require.NoError(t, err)
	return bal
}

func TestMintAndSupply(t *testing.T) {
	tok := newToken()

	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, 0, supply.Sign())

	require.NoError(t, tok.Mint(alice, big.NewInt(1000)))
	assert.Equal(t, big.NewInt(1000), balanceOf(t, tok, alice))

	supply, err = tok.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), supply)

	err = tok.Mint(alice, big.NewInt(0))
	assert.True(t, reverts.Is(err, reverts.InvalidParameter))
}

func TestTransfer(t *testing.T) {
	tok := newToken()
	require.NoError(t, tok.Mint(alice, big.NewInt(1000)))

	require.NoError(t, tok.Transfer(alice, bob, big.NewInt(300)))
	assert.Equal(t, big.NewInt(700), balanceOf(t, tok, alice))
	assert.Equal(t, big.NewInt(300), balanceOf(t, tok, bob))

	// zero transfer is a no-op
	require.NoError(t, tok.Transfer(alice, bob, big.NewInt(0)))
	assert.Equal(t, big.NewInt(700), balanceOf(t, tok, alice))

	err := tok.Transfer(bob, alice, big.NewInt(301))
	assert.True(t, reverts.Is(err, reverts.InsufficientBalance))

	// supply unchanged by transfers
	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), supply)
}

func TestBurn(t *testing.T) {
	tok := newToken()
	require.NoError(t, tok.Mint(alice, big.NewInt(1000)))

	require.NoError(t, tok.Burn(alice, big.NewInt(400)))
	assert.Equal(t, big.NewInt(600), balanceOf(t, tok, alice))

	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(600), supply)

	burned, err := tok.TotalBurned()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(400), burned)

	err = tok.Burn(alice, big.NewInt(601))
	assert.True(t, reverts.Is(err, reverts.InsufficientBalance))
}

func TestAllowance(t *testing.T) {
	tok := newToken()
	require.NoError(t, tok.Mint(alice, big.NewInt(1000)))

	err := tok.TransferFrom(carol, alice, bob, big.NewInt(100))
	assert.True(t, reverts.Is(err, reverts.InsufficientAllowance))

	require.NoError(t, tok.Approve(alice, carol, big.NewInt(250)))
	allowance, err := tok.Allowance(alice, carol)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(250), allowance)

	require.NoError(t, tok.TransferFrom(carol, alice, bob, big.NewInt(100)))
	assert.Equal(t, big.NewInt(900), balanceOf(t, tok, alice))
	assert.Equal(t, big.NewInt(100), balanceOf(t, tok, bob))

	allowance, err = tok.Allowance(alice, carol)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(150), allowance)

	err = tok.TransferFrom(carol, alice, bob, big.NewInt(151))
	assert.True(t, reverts.Is(err, reverts.InsufficientAllowance))
}
