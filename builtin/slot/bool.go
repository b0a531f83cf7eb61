// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"github.com/openledger-labs/tokenet/tokenet"
)

// Bool is a wrapper for storage and retrieval of a flag. An unset slot reads
// as false.
type Bool struct {
	context *Context
	pos     tokenet.Bytes32
}

func NewBool(context *Context, pos tokenet.Bytes32) *Bool {
	return &Bool{context: context, pos: pos}
}

func (b *Bool) Get() bool {
	storage := b.context.state.GetStorage(b.context.address, b.pos)
	return !storage.IsZero()
}

func (b *Bool) Set(value bool) {
	var storage tokenet.Bytes32
	if value {
		storage[31] = 1
	}
	b.context.state.SetStorage(b.context.address, b.pos, storage)
}
