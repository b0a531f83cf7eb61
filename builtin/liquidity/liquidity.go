// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package liquidity

import (
	"math/big"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/slot"
	"github.com/openledger-labs/tokenet/builtin/token"
	"github.com/openledger-labs/tokenet/log"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var logger = log.WithContext("pkg", "liquidity")

var seededPos = tokenet.Blake2b([]byte("seeded"))

// Router pairs token and native liquidity, an external collaborator.
type Router interface {
	AddLiquidity(token tokenet.Address, tokenAmount, nativeAmount *big.Int) error
}

// Bootstrap performs the one-shot initial liquidity seeding.
type Bootstrap struct {
	ctx    *slot.Context
	token  *token.Token
	aut    *authority.Authority
	router Router
	pair   tokenet.Address
	seeded *slot.Bool
}

func New(
	addr tokenet.Address,
	st *state.State,
	tok *token.Token,
	aut *authority.Authority,
	router Router,
	pair tokenet.Address,
) *Bootstrap {
	ctx := slot.NewContext(addr, st)
	return &Bootstrap{
		ctx:    ctx,
		token:  tok,
		aut:    aut,
		router: router,
		pair:   pair,
		seeded: slot.NewBool(ctx, seededPos),
	}
}

// Seeded reports whether initial liquidity has been added.
func (b *Bootstrap) Seeded() bool {
	return b.seeded.Get()
}

// AddInitialLiquidity moves tokenAmount tokens and nativeAmount native funds
// from the bootstrap contract to the pair, then notifies the router. Admin
// only, once.
func (b *Bootstrap) AddInitialLiquidity(caller tokenet.Address, tokenAmount, nativeAmount *big.Int) error {
	ok, err := b.aut.HasRole(caller, authority.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.New(reverts.Unauthorized, "caller is not admin")
	}
	if b.seeded.Get() {
		return reverts.New(reverts.AlreadyInState, "liquidity already seeded")
	}
	if tokenAmount.Sign() <= 0 || nativeAmount.Sign() <= 0 {
		return reverts.New(reverts.InvalidParameter, "liquidity amounts must be positive")
	}

	self := b.ctx.Address()
	st := b.ctx.State()

	if st.GetBalance(self).Cmp(nativeAmount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "insufficient native balance")
	}
	tokenBal, err := b.token.BalanceOf(self)
	if err != nil {
		return err
	}
	if tokenBal.Cmp(tokenAmount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "insufficient token balance")
	}

	// the pair is whitelisted, the move is untaxed
	if err := b.token.Transfer(self, b.pair, tokenAmount); err != nil {
		return err
	}
	if !st.SubBalance(self, nativeAmount) {
		return reverts.New(reverts.InsufficientBalance, "insufficient native balance")
	}
	st.AddBalance(b.pair, nativeAmount)

	if err := b.router.AddLiquidity(b.token.Address(), tokenAmount, nativeAmount); err != nil {
		return err
	}
	b.seeded.Set(true)
	logger.Info("initial liquidity seeded", "token", tokenAmount, "native", nativeAmount)
	return nil
}
