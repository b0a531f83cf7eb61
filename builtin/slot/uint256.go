// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"math/big"

	"github.com/openledger-labs/tokenet/tokenet"
)

// Uint256 is a wrapper for storage and retrieval of an uint256. Similar to
// storing an uint256 in a smart contract. If the provided value exceeds 256
// bits it is truncated to fit into tokenet.Bytes32.
type Uint256 struct {
	context *Context
	pos     tokenet.Bytes32
}

func NewUint256(context *Context, pos tokenet.Bytes32) *Uint256 {
	return &Uint256{context: context, pos: pos}
}

func (u *Uint256) Get() *big.Int {
	storage := u.context.state.GetStorage(u.context.address, u.pos)
	return new(big.Int).SetBytes(storage.Bytes())
}

func (u *Uint256) Set(value *big.Int) {
	storage := tokenet.BytesToBytes32(value.Bytes())
	u.context.state.SetStorage(u.context.address, u.pos, storage)
}

func (u *Uint256) Add(value *big.Int) {
	storage := u.Get()
	storage.Add(storage, value)
	u.Set(storage)
}

func (u *Uint256) Sub(value *big.Int) {
	storage := u.Get()
	storage.Sub(storage, value)
	u.Set(storage)
}
