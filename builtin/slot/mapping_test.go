// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

type testStruct struct {
	Field1 uint64
	Field2 uint64
	Addr1  tokenet.Address
	Bytes1 tokenet.Bytes32
}

func newTestContext() *Context {
	st := state.New()
	return NewContext(tokenet.Address{1}, st)
}

func TestMapping_SetGet_StructPointer(t *testing.T) {
	ctx := newTestContext()
	mapping := NewMapping[tokenet.Bytes32, *testStruct](ctx, tokenet.Bytes32{1})
	key := tokenet.BytesToBytes32([]byte("key"))
	value := &testStruct{
		Field1: 100,
		Field2: 200,
		Addr1:  tokenet.BytesToAddress([]byte("addr")),
		Bytes1: tokenet.BytesToBytes32([]byte("bytes")),
	}

	require.NoError(t, mapping.Set(key, value))
	assert.True(t, mapping.Has(key))

	got, err := mapping.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// missing key decodes to nil pointer
	got, err = mapping.Get(tokenet.BytesToBytes32([]byte("other")))
	require.NoError(t, err)
	assert.Nil(t, got)

	mapping.Delete(key)
	assert.False(t, mapping.Has(key))
	got, err = mapping.Get(key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMapping_SetGet_Uint64Value(t *testing.T) {
	ctx := newTestContext()
	mapping := NewMapping[tokenet.Address, uint64](ctx, tokenet.Bytes32{2})
	key := tokenet.BytesToAddress([]byte("k"))

	require.NoError(t, mapping.Set(key, 42))
	got, err := mapping.Get(key)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)

	got, err = mapping.Get(tokenet.BytesToAddress([]byte("missing")))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}

func TestMapping_Uint32Key(t *testing.T) {
	ctx := newTestContext()
	mapping := NewMapping[Uint32Key, uint64](ctx, tokenet.Bytes32{3})

	require.NoError(t, mapping.Set(Uint32Key(7), 700))
	got, err := mapping.Get(Uint32Key(7))
	require.NoError(t, err)
	assert.Equal(t, uint64(700), got)

	// distinct keys land on distinct slots
	got, err = mapping.Get(Uint32Key(8))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}

func TestMapping_DecodeError(t *testing.T) {
	st := state.New()
	contract := tokenet.BytesToAddress([]byte("map"))
	ctx := NewContext(contract, st)

	basePos := tokenet.BytesToBytes32([]byte("base"))
	m := NewMapping[tokenet.Address, tokenet.Address](ctx, basePos)

	key := tokenet.BytesToAddress([]byte("k"))
	pos := tokenet.Blake2b(key.Bytes(), basePos.Bytes())
	st.SetRawStorage(contract, pos, rlp.RawValue{0xFF})

	val, err := m.Get(key)
	assert.Error(t, err)
	assert.Equal(t, tokenet.Address{}, val)
}
