// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	_ state.StorageEncoder = (*entry)(nil)
	_ state.StorageDecoder = (*entry)(nil)
	_ state.StorageEncoder = (*addressPtr)(nil)
	_ state.StorageDecoder = (*addressPtr)(nil)
)

// Role is a permission bit held by an account.
type Role uint8

const (
	RoleAdmin Role = 1 << iota
	RoleTreasury
	RoleUpgrader
)

// entry contains all access data of an account. Entries form a doubly linked
// list so the full registry can be enumerated.
type entry struct {
	Roles       Role
	Whitelisted bool
	TaxExempt   bool
	Prev        *tokenet.Address `rlp:"nil"`
	Next        *tokenet.Address `rlp:"nil"`
}

// Encode implements state.StorageEncoder.
func (e *entry) Encode() ([]byte, error) {
	if e.IsEmpty() {
		return nil, nil
	}
	return rlp.EncodeToBytes(e)
}

// Decode implements state.StorageDecoder.
func (e *entry) Decode(data []byte) error {
	if len(data) == 0 {
		*e = entry{}
		return nil
	}
	return rlp.DecodeBytes(data, e)
}

// IsEmpty returns whether the entry can be treated as empty.
func (e *entry) IsEmpty() bool {
	return e.Roles == 0 &&
		!e.Whitelisted &&
		!e.TaxExempt &&
		e.Prev == nil &&
		e.Next == nil
}

// hasFlags reports whether the entry still carries any access data.
func (e *entry) hasFlags() bool {
	return e.Roles != 0 || e.Whitelisted || e.TaxExempt
}

type addressPtr struct {
	Address *tokenet.Address `rlp:"nil"`
}

func (ap *addressPtr) Encode() ([]byte, error) {
	if ap.Address == nil {
		return nil, nil
	}
	return rlp.EncodeToBytes(&ap.Address)
}

func (ap *addressPtr) Decode(data []byte) error {
	if len(data) == 0 {
		ap.Address = nil
		return nil
	}
	return rlp.DecodeBytes(data, &ap.Address)
}

// Account is a registry entry paired with its address, as returned by
// enumeration.
type Account struct {
	Address     tokenet.Address
	Roles       Role
	Whitelisted bool
	TaxExempt   bool
}
