// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openledger-labs/tokenet/tokenet"
)

func TestBalances(t *testing.T) {
	st := New()
	acc := tokenet.BytesToAddress([]byte("a1"))

	assert.Equal(t, new(big.Int), st.GetBalance(acc))

	st.AddBalance(acc, big.NewInt(100))
	assert.Equal(t, big.NewInt(100), st.GetBalance(acc))

	assert.True(t, st.SubBalance(acc, big.NewInt(40)))
	assert.Equal(t, big.NewInt(60), st.GetBalance(acc))

	assert.False(t, st.SubBalance(acc, big.NewInt(61)))
	assert.Equal(t, big.NewInt(60), st.GetBalance(acc))
}

func TestStorage(t *testing.T) {
	st := New()
	contract := tokenet.BytesToAddress([]byte("c1"))
	key := tokenet.Blake2b([]byte("k"))

	assert.True(t, st.GetStorage(contract, key).IsZero())

	v := tokenet.BytesToBytes32([]byte{1, 2, 3})
	st.SetStorage(contract, key, v)
	assert.Equal(t, v, st.GetStorage(contract, key))

	st.SetStorage(contract, key, tokenet.Bytes32{})
	assert.True(t, st.GetStorage(contract, key).IsZero())
	assert.Nil(t, st.GetRawStorage(contract, key))
}

func TestStructuredStorage(t *testing.T) {
	st := New()
	contract := tokenet.BytesToAddress([]byte("c1"))
	key := tokenet.Blake2b([]byte("big"))

	in := big.NewInt(123456789)
	assert.Nil(t, st.SetStructuredStorage(contract, key, in))

	var out big.Int
	assert.Nil(t, st.GetStructuredStorage(contract, key, &out))
	assert.Equal(t, in, &out)

	// empty slot leaves the zero value
	var empty big.Int
	assert.Nil(t, st.GetStructuredStorage(contract, tokenet.Blake2b([]byte("nope")), &empty))
	assert.Equal(t, int64(0), empty.Int64())
}

func TestCheckpointRevert(t *testing.T) {
	st := New()
	acc := tokenet.BytesToAddress([]byte("a1"))
	contract := tokenet.BytesToAddress([]byte("c1"))
	key := tokenet.Blake2b([]byte("k"))

	st.AddBalance(acc, big.NewInt(100))
	st.SetStorage(contract, key, tokenet.BytesToBytes32([]byte{7}))

	cp := st.NewCheckpoint()

	st.SubBalance(acc, big.NewInt(30))
	st.SetStorage(contract, key, tokenet.BytesToBytes32([]byte{8}))
	st.SetStorage(contract, tokenet.Blake2b([]byte("new")), tokenet.BytesToBytes32([]byte{9}))
	st.AddBalance(tokenet.BytesToAddress([]byte("a2")), big.NewInt(5))

	st.RevertTo(cp)

	assert.Equal(t, big.NewInt(100), st.GetBalance(acc))
	assert.Equal(t, tokenet.BytesToBytes32([]byte{7}), st.GetStorage(contract, key))
	assert.True(t, st.GetStorage(contract, tokenet.Blake2b([]byte("new"))).IsZero())
	assert.Equal(t, new(big.Int), st.GetBalance(tokenet.BytesToAddress([]byte("a2"))))
}

func TestNestedCheckpoints(t *testing.T) {
	st := New()
	acc := tokenet.BytesToAddress([]byte("a1"))

	cp1 := st.NewCheckpoint()
	st.AddBalance(acc, big.NewInt(1))
	cp2 := st.NewCheckpoint()
	st.AddBalance(acc, big.NewInt(2))

	st.RevertTo(cp2)
	assert.Equal(t, big.NewInt(1), st.GetBalance(acc))

	st.RevertTo(cp1)
	assert.Equal(t, new(big.Int), st.GetBalance(acc))
}
