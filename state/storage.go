// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/openledger-labs/tokenet/tokenet"
)

// StorageEncoder implement it to customize encoding process for storage data.
type StorageEncoder interface {
	Encode() ([]byte, error)
}

// StorageDecoder implement it to customize decoding process for storage data.
type StorageDecoder interface {
	Decode([]byte) error
}

// GetStructuredStorage loads a structured storage value. Values implementing
// StorageDecoder decode themselves; anything else is RLP decoded, with the
// zero value left in place for an empty slot.
func (s *State) GetStructuredStorage(addr tokenet.Address, key tokenet.Bytes32, val any) error {
	return s.DecodeStorage(addr, key, func(raw []byte) error {
		if dec, ok := val.(StorageDecoder); ok {
			return dec.Decode(raw)
		}
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, val)
	})
}

// SetStructuredStorage stores a structured storage value. Values implementing
// StorageEncoder encode themselves (returning nil clears the slot); anything
// else is RLP encoded.
func (s *State) SetStructuredStorage(addr tokenet.Address, key tokenet.Bytes32, val any) error {
	return s.EncodeStorage(addr, key, func() ([]byte, error) {
		if enc, ok := val.(StorageEncoder); ok {
			return enc.Encode()
		}
		return rlp.EncodeToBytes(val)
	})
}
