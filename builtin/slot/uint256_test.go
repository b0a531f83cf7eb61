// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openledger-labs/tokenet/tokenet"
)

func TestUint256(t *testing.T) {
	ctx := newTestContext()
	u := NewUint256(ctx, tokenet.BytesToBytes32([]byte("total")))

	assert.Equal(t, big.NewInt(0).String(), u.Get().String())

	u.Set(big.NewInt(1000))
	assert.Equal(t, big.NewInt(1000), u.Get())

	u.Add(big.NewInt(234))
	assert.Equal(t, big.NewInt(1234), u.Get())

	u.Sub(big.NewInt(1234))
	assert.Equal(t, big.NewInt(0).String(), u.Get().String())
}

func TestAddress(t *testing.T) {
	ctx := newTestContext()
	a := NewAddress(ctx, tokenet.BytesToBytes32([]byte("treasury")))

	assert.True(t, a.Get().IsZero())

	addr := tokenet.BytesToAddress([]byte("treasury-addr"))
	a.Set(addr)
	assert.Equal(t, addr, a.Get())
}

func TestBool(t *testing.T) {
	ctx := newTestContext()
	b := NewBool(ctx, tokenet.BytesToBytes32([]byte("paused")))

	assert.False(t, b.Get())
	b.Set(true)
	assert.True(t, b.Get())
	b.Set(false)
	assert.False(t, b.Get())
}
