// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var (
	headKey        = tokenet.Blake2b([]byte("head"))
	tailKey        = tokenet.Blake2b([]byte("tail"))
	initializedKey = tokenet.Blake2b([]byte("initialized"))
)

// Authority is the access registry. It tracks per-account roles and the
// whitelist and tax-exempt flags consulted on every transfer.
type Authority struct {
	addr  tokenet.Address
	state *state.State
}

// New create a new instance.
func New(addr tokenet.Address, state *state.State) *Authority {
	return &Authority{addr, state}
}

func (a *Authority) getEntry(account tokenet.Address) (*entry, error) {
	var entry entry
	if err := a.state.GetStructuredStorage(a.addr, tokenet.BytesToBytes32(account[:]), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *Authority) setEntry(account tokenet.Address, entry *entry) error {
	return a.state.SetStructuredStorage(a.addr, tokenet.BytesToBytes32(account[:]), entry)
}

func (a *Authority) getAddressPtr(key tokenet.Bytes32) (*tokenet.Address, error) {
	var ptr addressPtr
	if err := a.state.GetStructuredStorage(a.addr, key, &ptr); err != nil {
		return nil, err
	}
	return ptr.Address, nil
}

func (a *Authority) setAddressPtr(key tokenet.Bytes32, addr *tokenet.Address) error {
	return a.state.SetStructuredStorage(a.addr, key, &addressPtr{addr})
}

// list appends an account with a fresh entry to the enumeration list.
func (a *Authority) list(account tokenet.Address, entry *entry) error {
	tailPtr, err := a.getAddressPtr(tailKey)
	if err != nil {
		return err
	}
	entry.Prev = tailPtr

	if err := a.setAddressPtr(tailKey, &account); err != nil {
		return err
	}
	if tailPtr == nil {
		return a.setAddressPtr(headKey, &account)
	}
	tailEntry, err := a.getEntry(*tailPtr)
	if err != nil {
		return err
	}
	tailEntry.Next = &account
	return a.setEntry(*tailPtr, tailEntry)
}

// unlist detaches an account whose flags have all been cleared.
func (a *Authority) unlist(entry *entry) error {
	if entry.Prev == nil {
		if err := a.setAddressPtr(headKey, entry.Next); err != nil {
			return err
		}
	} else {
		prevEntry, err := a.getEntry(*entry.Prev)
		if err != nil {
			return err
		}
		prevEntry.Next = entry.Next
		if err := a.setEntry(*entry.Prev, prevEntry); err != nil {
			return err
		}
	}

	if entry.Next == nil {
		if err := a.setAddressPtr(tailKey, entry.Prev); err != nil {
			return err
		}
	} else {
		nextEntry, err := a.getEntry(*entry.Next)
		if err != nil {
			return err
		}
		nextEntry.Prev = entry.Prev
		if err := a.setEntry(*entry.Next, nextEntry); err != nil {
			return err
		}
	}

	entry.Prev = nil
	entry.Next = nil
	return nil
}

// save writes back an entry, listing or unlisting it as its flags demand.
func (a *Authority) save(account tokenet.Address, entry *entry, wasListed bool) error {
	if !wasListed && entry.hasFlags() {
		if err := a.list(account, entry); err != nil {
			return err
		}
	} else if wasListed && !entry.hasFlags() {
		if err := a.unlist(entry); err != nil {
			return err
		}
	}
	return a.setEntry(account, entry)
}

func (a *Authority) requireAdmin(caller tokenet.Address) error {
	ok, err := a.HasRole(caller, RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.New(reverts.Unauthorized, "caller is not admin")
	}
	return nil
}

// Initialize grants the initial admin role. It can only be called once.
func (a *Authority) Initialize(admin tokenet.Address) error {
	if !a.state.GetStorage(a.addr, initializedKey).IsZero() {
		return reverts.New(reverts.AlreadyInState, "already initialized")
	}
	a.state.SetStorage(a.addr, initializedKey, tokenet.BytesToBytes32([]byte{1}))

	entry, err := a.getEntry(admin)
	if err != nil {
		return err
	}
	wasListed := entry.hasFlags()
	entry.Roles |= RoleAdmin
	return a.save(admin, entry, wasListed)
}

// GrantRole gives target the role. Caller must be admin.
func (a *Authority) GrantRole(caller, target tokenet.Address, role Role) error {
	if err := a.requireAdmin(caller); err != nil {
		return err
	}
	entry, err := a.getEntry(target)
	if err != nil {
		return err
	}
	if entry.Roles&role != 0 {
		return reverts.New(reverts.AlreadyInState, "role already granted")
	}
	wasListed := entry.hasFlags()
	entry.Roles |= role
	return a.save(target, entry, wasListed)
}

// RevokeRole removes the role from target. Caller must be admin.
func (a *Authority) RevokeRole(caller, target tokenet.Address, role Role) error {
	if err := a.requireAdmin(caller); err != nil {
		return err
	}
	entry, err := a.getEntry(target)
	if err != nil {
		return err
	}
	if entry.Roles&role == 0 {
		return reverts.New(reverts.AlreadyInState, "role not granted")
	}
	wasListed := entry.hasFlags()
	entry.Roles &^= role
	return a.save(target, entry, wasListed)
}

// SetWhitelisted toggles the transfer whitelist flag. Caller must be admin.
func (a *Authority) SetWhitelisted(caller, target tokenet.Address, on bool) error {
	if err := a.requireAdmin(caller); err != nil {
		return err
	}
	entry, err := a.getEntry(target)
	if err != nil {
		return err
	}
	if entry.Whitelisted == on {
		return reverts.New(reverts.AlreadyInState, "whitelist flag unchanged")
	}
	wasListed := entry.hasFlags()
	entry.Whitelisted = on
	return a.save(target, entry, wasListed)
}

// SetTaxExempt toggles the tax exemption flag. Caller must be admin.
func (a *Authority) SetTaxExempt(caller, target tokenet.Address, on bool) error {
	if err := a.requireAdmin(caller); err != nil {
		return err
	}
	entry, err := a.getEntry(target)
	if err != nil {
		return err
	}
	if entry.TaxExempt == on {
		return reverts.New(reverts.AlreadyInState, "tax exempt flag unchanged")
	}
	wasListed := entry.hasFlags()
	entry.TaxExempt = on
	return a.save(target, entry, wasListed)
}

// HasRole reports whether account holds the role.
func (a *Authority) HasRole(account tokenet.Address, role Role) (bool, error) {
	entry, err := a.getEntry(account)
	if err != nil {
		return false, err
	}
	return entry.Roles&role != 0, nil
}

// IsWhitelisted reports whether account is on the transfer whitelist.
func (a *Authority) IsWhitelisted(account tokenet.Address) (bool, error) {
	entry, err := a.getEntry(account)
	if err != nil {
		return false, err
	}
	return entry.Whitelisted, nil
}

// IsTaxExempt reports whether account is exempt from transfer tax.
func (a *Authority) IsTaxExempt(account tokenet.Address) (bool, error) {
	entry, err := a.getEntry(account)
	if err != nil {
		return false, err
	}
	return entry.TaxExempt, nil
}

// IsExempt reports whether account bypasses transfer restrictions, either
// via the whitelist or a tax exemption.
func (a *Authority) IsExempt(account tokenet.Address) (bool, error) {
	entry, err := a.getEntry(account)
	if err != nil {
		return false, err
	}
	return entry.Whitelisted || entry.TaxExempt, nil
}

// AllAccounts lists every account with registry flags, in insertion order.
func (a *Authority) AllAccounts() ([]*Account, error) {
	ptr, err := a.getAddressPtr(headKey)
	if err != nil {
		return nil, err
	}
	var accounts []*Account
	for ptr != nil {
		entry, err := a.getEntry(*ptr)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, &Account{
			Address:     *ptr,
			Roles:       entry.Roles,
			Whitelisted: entry.Whitelisted,
			TaxExempt:   entry.TaxExempt,
		})
		ptr = entry.Next
	}
	return accounts, nil
}

// First returns the address of the first registry entry.
func (a *Authority) First() (*tokenet.Address, error) {
	return a.getAddressPtr(headKey)
}

// Next returns the address following the given account in the registry.
func (a *Authority) Next(account tokenet.Address) (*tokenet.Address, error) {
	entry, err := a.getEntry(account)
	if err != nil {
		return nil, err
	}
	return entry.Next, nil
}
