// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/openledger-labs/tokenet/tokenet"
)

// State manages the world state: native-asset balances per account and
// per-contract key/value storage. All mutations are journaled so that an
// operation can be rolled back as a whole with checkpoint/revert, in a
// save-restore manner.
//
// State is not safe for concurrent use. Callers must serialize access;
// the engine holds a single writer lock around every operation.
type State struct {
	balances map[tokenet.Address]*big.Int
	storage  map[tokenet.Address]map[tokenet.Bytes32][]byte
	journal  []journalEntry
}

type journalEntry struct {
	addr tokenet.Address

	// exactly one of the two sections is meaningful
	balance     bool
	prevBalance *big.Int

	key         tokenet.Bytes32
	prevRaw     []byte
	prevExisted bool
}

// New creates an empty world state.
func New() *State {
	return &State{
		balances: make(map[tokenet.Address]*big.Int),
		storage:  make(map[tokenet.Address]map[tokenet.Bytes32][]byte),
	}
}

// NewCheckpoint takes a checkpoint of the current state and returns it.
func (s *State) NewCheckpoint() int {
	return len(s.journal)
}

// RevertTo reverts all mutations made after the given checkpoint.
func (s *State) RevertTo(checkpoint int) {
	for i := len(s.journal) - 1; i >= checkpoint; i-- {
		e := &s.journal[i]
		if e.balance {
			if e.prevBalance == nil {
				delete(s.balances, e.addr)
			} else {
				s.balances[e.addr] = e.prevBalance
			}
			continue
		}
		slots := s.storage[e.addr]
		if e.prevExisted {
			slots[e.key] = e.prevRaw
		} else {
			delete(slots, e.key)
		}
	}
	s.journal = s.journal[:checkpoint]
}

// GetBalance returns the native-asset balance of the given account.
func (s *State) GetBalance(addr tokenet.Address) *big.Int {
	if bal, ok := s.balances[addr]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

// SetBalance sets the native-asset balance of the given account.
func (s *State) SetBalance(addr tokenet.Address, balance *big.Int) {
	prev, existed := s.balances[addr]
	entry := journalEntry{addr: addr, balance: true}
	if existed {
		entry.prevBalance = prev
	}
	s.journal = append(s.journal, entry)
	s.balances[addr] = new(big.Int).Set(balance)
}

// AddBalance credits the account with the given amount.
func (s *State) AddBalance(addr tokenet.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.SetBalance(addr, new(big.Int).Add(s.GetBalance(addr), amount))
}

// SubBalance debits the account. It returns false without mutating anything
// when the balance is insufficient.
func (s *State) SubBalance(addr tokenet.Address, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	bal := s.GetBalance(addr)
	if bal.Cmp(amount) < 0 {
		return false
	}
	s.SetBalance(addr, bal.Sub(bal, amount))
	return true
}

// GetRawStorage returns the raw storage value of the given contract slot.
func (s *State) GetRawStorage(addr tokenet.Address, key tokenet.Bytes32) []byte {
	return s.storage[addr][key]
}

// SetRawStorage stores the raw value into the given contract slot.
// An empty value deletes the slot.
func (s *State) SetRawStorage(addr tokenet.Address, key tokenet.Bytes32, raw []byte) {
	slots, ok := s.storage[addr]
	if !ok {
		slots = make(map[tokenet.Bytes32][]byte)
		s.storage[addr] = slots
	}
	prev, existed := slots[key]
	s.journal = append(s.journal, journalEntry{
		addr:        addr,
		key:         key,
		prevRaw:     prev,
		prevExisted: existed,
	})
	if len(raw) == 0 {
		delete(slots, key)
		return
	}
	cpy := make([]byte, len(raw))
	copy(cpy, raw)
	slots[key] = cpy
}

// GetStorage returns the 32-byte storage value of the given contract slot.
func (s *State) GetStorage(addr tokenet.Address, key tokenet.Bytes32) tokenet.Bytes32 {
	return tokenet.BytesToBytes32(s.GetRawStorage(addr, key))
}

// SetStorage stores the 32-byte value into the given contract slot.
func (s *State) SetStorage(addr tokenet.Address, key tokenet.Bytes32, value tokenet.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	s.SetRawStorage(addr, key, trimLeadingZeros(value.Bytes()))
}

// EncodeStorage set storage value encoded by given enc method.
func (s *State) EncodeStorage(addr tokenet.Address, key tokenet.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return err
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value with given dec method.
func (s *State) DecodeStorage(addr tokenet.Address, key tokenet.Bytes32, dec func(raw []byte) error) error {
	return dec(s.GetRawStorage(addr, key))
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}
