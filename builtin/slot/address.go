// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"github.com/openledger-labs/tokenet/tokenet"
)

// Address is a wrapper for storage and retrieval of an address. Similar to
// storing an address in a smart contract.
type Address struct {
	context *Context
	pos     tokenet.Bytes32
}

func NewAddress(context *Context, pos tokenet.Bytes32) *Address {
	return &Address{context: context, pos: pos}
}

func (a *Address) Get() tokenet.Address {
	storage := a.context.state.GetStorage(a.context.address, a.pos)
	return tokenet.BytesToAddress(storage.Bytes())
}

func (a *Address) Set(addr tokenet.Address) {
	storage := tokenet.BytesToBytes32(addr.Bytes())
	a.context.state.SetStorage(a.context.address, a.pos, storage)
}
