// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

// Context binds a built-in contract's storage helpers to its address and
// the backing state.
type Context struct {
	address tokenet.Address
	state   *state.State
}

func NewContext(address tokenet.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() tokenet.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}
