// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes32(t *testing.T) {
	b := BytesToBytes32([]byte("tokenet"))
	assert.False(t, b.IsZero())
	assert.True(t, Bytes32{}.IsZero())

	parsed, err := ParseBytes32(b.String())
	assert.Nil(t, err)
	assert.Equal(t, b, parsed)

	_, err = ParseBytes32("0xabc")
	assert.Error(t, err)
}

func TestAddress(t *testing.T) {
	addr := BytesToAddress([]byte("a1"))
	assert.False(t, addr.IsZero())

	parsed, err := ParseAddress(addr.String())
	assert.Nil(t, err)
	assert.Equal(t, addr, *parsed)

	_, err = ParseAddress("zz")
	assert.Error(t, err)
}

func TestBlake2b(t *testing.T) {
	// concatenated multi-part hashing must equal single-part hashing
	single := Blake2b([]byte("hello world"))
	multi := Blake2b([]byte("hello "), []byte("world"))
	assert.Equal(t, single, multi)
	assert.NotEqual(t, single, Blake2b([]byte("hello worlds")))
}
