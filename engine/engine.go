// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/openledger-labs/tokenet/builtin/authority"
	"github.com/openledger-labs/tokenet/builtin/gate"
	"github.com/openledger-labs/tokenet/builtin/liquidity"
	"github.com/openledger-labs/tokenet/builtin/params"
	"github.com/openledger-labs/tokenet/builtin/reverts"
	"github.com/openledger-labs/tokenet/builtin/staking"
	"github.com/openledger-labs/tokenet/builtin/tax"
	"github.com/openledger-labs/tokenet/builtin/token"
	"github.com/openledger-labs/tokenet/log"
	"github.com/openledger-labs/tokenet/metrics"
	"github.com/openledger-labs/tokenet/state"
	"github.com/openledger-labs/tokenet/tokenet"
)

var logger = log.WithContext("pkg", "engine")

var metricOps = metrics.CounterVec("engine_ops_total", []string{"op", "outcome"})

// Canonical addresses of the built-in contracts.
var (
	TokenAddress     = tokenet.BytesToAddress([]byte("tokenet-token"))
	AuthorityAddress = tokenet.BytesToAddress([]byte("tokenet-authority"))
	ParamsAddress    = tokenet.BytesToAddress([]byte("tokenet-params"))
	TaxAddress       = tokenet.BytesToAddress([]byte("tokenet-tax"))
	LiquidityAddress = tokenet.BytesToAddress([]byte("tokenet-liquidity"))
	StakingAddress   = tokenet.BytesToAddress([]byte("tokenet-staking"))
)

// Config is the bootstrap configuration of an Engine.
type Config struct {
	Deployer      tokenet.Address
	Treasury      tokenet.Address
	Router        tokenet.Address
	Pair          tokenet.Address
	InitialSupply *big.Int
	AdminDelay    uint64

	// LiquidityRouter receives the one-shot liquidity seeding call. Optional.
	LiquidityRouter liquidity.Router

	// Staking emission schedule.
	RewardPerBlock *big.Int
	StartBlock     uint32
	EndBlock       uint32
}

// Engine is the single-writer front door of the token economy. Every
// mutating operation runs under the lock against a checkpoint, so a failed
// operation leaves no trace.
type Engine struct {
	mu sync.Mutex
	st *state.State

	blockNum  uint32
	blockTime uint64

	token     *token.Token
	authority *authority.Authority
	params    *params.Params
	tax       *tax.TaxGovernor
	gate      *gate.TransferGate
	liquidity *liquidity.Bootstrap
	staking   *staking.Staking

	pair tokenet.Address
}

type noopRouter struct{}

func (noopRouter) AddLiquidity(_ tokenet.Address, _, _ *big.Int) error { return nil }

// New builds an engine and runs the one-time bootstrap: initial supply to the
// deployer, roles granted, infrastructure addresses whitelisted, default tax
// rates armed.
func New(cfg Config) (*Engine, error) {
	if cfg.InitialSupply == nil || cfg.InitialSupply.Sign() <= 0 {
		return nil, errors.New("initial supply must be positive")
	}
	if cfg.LiquidityRouter == nil {
		cfg.LiquidityRouter = noopRouter{}
	}

	st := state.New()
	aut := authority.New(AuthorityAddress, st)
	par := params.New(ParamsAddress, st, aut)
	gov := tax.New(TaxAddress, st, aut, par)
	tok := token.New(TokenAddress, st)

	e := &Engine{
		st:        st,
		blockNum:  1,
		blockTime: tokenet.BlockInterval,
		token:     tok,
		authority: aut,
		params:    par,
		tax:       gov,
		gate:      gate.New(tok, gov, aut, par, cfg.Pair, cfg.Treasury),
		liquidity: liquidity.New(LiquidityAddress, st, tok, aut, cfg.LiquidityRouter, cfg.Pair),
		staking:   staking.New(StakingAddress, st, aut),
		pair:      cfg.Pair,
	}

	if err := aut.Initialize(cfg.Deployer); err != nil {
		return nil, errors.Wrap(err, "bootstrap authority")
	}
	par.InitDefaults()
	if err := gov.Initialize(cfg.AdminDelay); err != nil {
		return nil, errors.Wrap(err, "bootstrap tax")
	}
	if err := tok.Mint(cfg.Deployer, cfg.InitialSupply); err != nil {
		return nil, errors.Wrap(err, "bootstrap supply")
	}
	for _, addr := range []tokenet.Address{cfg.Treasury, cfg.Router, TokenAddress, LiquidityAddress, StakingAddress} {
		if err := aut.SetWhitelisted(cfg.Deployer, addr, true); err != nil {
			return nil, errors.Wrap(err, "bootstrap whitelist")
		}
	}
	if err := aut.GrantRole(cfg.Deployer, cfg.Treasury, authority.RoleTreasury); err != nil {
		return nil, errors.Wrap(err, "bootstrap roles")
	}
	if cfg.RewardPerBlock != nil {
		if err := e.staking.Initialize(cfg.Deployer, TokenAddress, cfg.RewardPerBlock, cfg.StartBlock, cfg.EndBlock); err != nil {
			return nil, errors.Wrap(err, "bootstrap staking")
		}
	}
	logger.Info("engine bootstrapped",
		"deployer", cfg.Deployer, "supply", cfg.InitialSupply, "pair", cfg.Pair)
	return e, nil
}

// run executes a mutating operation under the lock. On error every state
// change of the operation is rolled back.
func (e *Engine) run(op string, fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := e.st.NewCheckpoint()
	if err := fn(); err != nil {
		e.st.RevertTo(cp)
		outcome := "failed"
		if reverts.IsRevertErr(err) {
			outcome = "reverted"
		}
		metricOps.AddWithLabel(1, map[string]string{"op": op, "outcome": outcome})
		logger.Debug("operation rolled back", "op", op, "outcome", outcome, "err", err)
		return err
	}
	metricOps.AddWithLabel(1, map[string]string{"op": op, "outcome": "ok"})
	return nil
}

// view executes a read-only operation under the lock.
func (e *Engine) view(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn()
}

// MineBlocks advances the chain clock by n blocks.
func (e *Engine) MineBlocks(n uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blockNum += n
	e.blockTime += uint64(n) * tokenet.BlockInterval
}

// SetClock pins the chain clock, for simulations.
func (e *Engine) SetClock(blockNum uint32, blockTime uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blockNum = blockNum
	e.blockTime = blockTime
}

// BlockNum returns the current block number.
func (e *Engine) BlockNum() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blockNum
}

// BlockTime returns the current block timestamp in seconds.
func (e *Engine) BlockTime() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blockTime
}
