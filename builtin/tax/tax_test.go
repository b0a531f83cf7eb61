// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/params"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/tax"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	admin  = tokenet.BytesToAddress([]byte("admin"))
	nobody = tokenet.BytesToAddress([]byte("nobody"))
	alice  = tokenet.BytesToAddress([]byte("alice"))
)

func newGovernor(t *testing.T, adminDelay uint64) *tax.TaxGovernor {
	st := state.New()
	aut := authority.New(tokenet.BytesToAddress([]byte("authority-addr")), st)
	require.NoError(t, aut.Initialize(admin))
	par := params.New(tokenet.BytesToAddress([]byte("params-addr")), st, aut)
	par.InitDefaults()
	gov := tax.New(tokenet.BytesToAddress([]byte("tax-addr")), st, aut, par)
	require.NoError(t, gov.Initialize(adminDelay))
	return gov
}

func TestInitialize(t *testing.T) {
	gov := newGovernor(t, 10)

	buy, sell := gov.GetTax()
	assert.Equal(t, tokenet.DefaultBuyTaxBps, buy)
	assert.Equal(t, tokenet.DefaultSellTaxBps, sell)
	assert.Equal(t, uint64(10), gov.AdminDelay())
	assert.Equal(t, tokenet.MinTxDelayFloor, gov.MinTxDelay())

	err := gov.Initialize(10)
	assert.True(t, reverts.Is(err, reverts.AlreadyInState))
}

func TestProposeExecute(t *testing.T) {
	gov := newGovernor(t, 10)
	now := uint64(1000)

	err := gov.Propose(nobody, 600, 1200, now)
	assert.True(t, reverts.Is(err, reverts.Unauthorized))

	err = gov.Propose(admin, tokenet.MaxTaxBps+1, 1200, now)
	assert.True(t, reverts.Is(err, reverts.InvalidParameter))

	require.NoError(t, gov.Propose(admin, 600, 1200, now))

	// live rates untouched until execute
	buy, sell := gov.GetTax()
	assert.Equal(t, tokenet.DefaultBuyTaxBps, buy)
	assert.Equal(t, tokenet.DefaultSellTaxBps, sell)

	pBuy, pSell, proposedAt, ok, err := gov.PendingProposal()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(600), pBuy)
	assert.Equal(t, uint16(1200), pSell)
	assert.Equal(t, now, proposedAt)

	// too early
	err = gov.Execute(admin, 600, 1200, now, now+5)
	assert.True(t, reverts.Is(err, reverts.NotReady))

	// wrong rates or timestamp
	err = gov.Execute(admin, 700, 1200, now, now+10)
	assert.True(t, reverts.Is(err, reverts.Mismatch))
	err = gov.Execute(admin, 600, 1200, now+1, now+11)
	assert.True(t, reverts.Is(err, reverts.Mismatch))

	require.NoError(t, gov.Execute(admin, 600, 1200, now, now+10))
	buy, sell = gov.GetTax()
	assert.Equal(t, uint16(600), buy)
	assert.Equal(t, uint16(1200), sell)

	// replay of the consumed proposal
	err = gov.Execute(admin, 600, 1200, now, now+20)
	assert.True(t, reverts.Is(err, reverts.Mismatch))
	_, _, _, ok, err = gov.PendingProposal()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProposeOverwrites(t *testing.T) {
	gov := newGovernor(t, 10)

	require.NoError(t, gov.Propose(admin, 600, 1200, 1000))
	require.NoError(t, gov.Propose(admin, 700, 1400, 1100))

	// first proposal is gone
	err := gov.Execute(admin, 600, 1200, 1000, 2000)
	assert.True(t, reverts.Is(err, reverts.Mismatch))

	require.NoError(t, gov.Execute(admin, 700, 1400, 1100, 1111))
	buy, sell := gov.GetTax()
	assert.Equal(t, uint16(700), buy)
	assert.Equal(t, uint16(1400), sell)
}

func TestMinTxDelay(t *testing.T) {
	gov := newGovernor(t, 10)

	err := gov.SetMinTxDelay(nobody, 30)
	assert.True(t, reverts.Is(err, reverts.Unauthorized))

	err = gov.SetMinTxDelay(admin, tokenet.MinTxDelayFloor-1)
	assert.True(t, reverts.Is(err, reverts.InvalidParameter))

	require.NoError(t, gov.SetMinTxDelay(admin, 30))
	assert.Equal(t, uint64(30), gov.MinTxDelay())
}

func TestCooldown(t *testing.T) {
	gov := newGovernor(t, 10)

	// first transfer always passes
	require.NoError(t, gov.CheckCooldown(alice, 1000))

	require.NoError(t, gov.Stamp(alice, 1000))
	last, err := gov.LastTx(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), last)

	err = gov.CheckCooldown(alice, 1005)
	assert.True(t, reverts.Is(err, reverts.TooFrequent))

	require.NoError(t, gov.CheckCooldown(alice, 1000+gov.MinTxDelay()))
}
