// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/openledger-labs/tokenet/engine"
	"github.com/openledger-labs/tokenet/log"
	"github.com/openledger-labs/tokenet/metrics"
	"github.com/openledger-labs/tokenet/tokenet"
)

var version = "1.0.0"

func main() {
	app := cli.App{
		Version:   version,
		Name:      "tokenet",
		Usage:     "token economy simulator",
		Copyright: "(c) 2026 The tokenet developers",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "verbosity",
				Value: int(slog.LevelInfo),
				Usage: "log verbosity (-4 debug, 0 info, 4 warn, 8 error)",
			},
			cli.BoolFlag{
				Name:  "enable-metrics",
				Usage: "serve prometheus metrics",
			},
			cli.StringFlag{
				Name:  "metrics-addr",
				Value: "localhost:2112",
				Usage: "metrics service listening address",
			},
			cli.IntFlag{
				Name:  "blocks",
				Value: 100,
				Usage: "number of blocks to simulate",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx *cli.Context) {
	level := slog.Level(ctx.Int("verbosity"))
	w := os.Stderr
	if isatty.IsTerminal(w.Fd()) {
		log.SetDefault(log.NewTextHandler(w, level))
	} else {
		log.SetDefault(log.NewJSONHandler(w, level))
	}
}

func run(ctx *cli.Context) error {
	initLogger(ctx)

	goCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	group, goCtx := errgroup.WithContext(goCtx)

	if ctx.Bool("enable-metrics") {
		metrics.InitializePrometheusMetrics()
		srv, err := startMetricsServer(ctx.String("metrics-addr"))
		if err != nil {
			return err
		}
		defer srv.Close()
	}

	group.Go(func() error {
		defer stop()
		return simulate(uint32(ctx.Int("blocks")))
	})

	<-goCtx.Done()
	return group.Wait()
}

func startMetricsServer(addr string) (*http.Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics API addr [%s]: %w", addr, err)
	}
	router := http.NewServeMux()
	router.Handle("/metrics", metrics.HTTPHandler())
	srv := &http.Server{Handler: router}
	go func() {
		_ = srv.Serve(listener)
	}()
	log.Info("metrics service started", "addr", "http://"+listener.Addr().String()+"/metrics")
	return srv, nil
}

// simulate drives one full economy lifecycle: bootstrap, liquidity seeding,
// taxed trading, staking and governance, mining the requested block count.
func simulate(blocks uint32) error {
	var (
		deployer = tokenet.BytesToAddress([]byte("deployer"))
		treasury = tokenet.BytesToAddress([]byte("treasury"))
		router   = tokenet.BytesToAddress([]byte("router"))
		pair     = tokenet.BytesToAddress([]byte("pair"))
		trader   = tokenet.BytesToAddress([]byte("trader"))
	)

	e, err := engine.New(engine.Config{
		Deployer:       deployer,
		Treasury:       treasury,
		Router:         router,
		Pair:           pair,
		InitialSupply:  big.NewInt(1_000_000_000),
		AdminDelay:     60,
		RewardPerBlock: big.NewInt(100),
		StartBlock:     0,
		EndBlock:       1_000_000,
	})
	if err != nil {
		return err
	}

	if err := e.FundLiquidity(deployer, big.NewInt(100_000_000), big.NewInt(1_000_000)); err != nil {
		return err
	}
	if err := e.AddInitialLiquidity(deployer, big.NewInt(100_000_000), big.NewInt(1_000_000)); err != nil {
		return err
	}

	if err := e.AddPool(deployer, tokenet.Address{}, true, 100, big.NewInt(1), 50, false); err != nil {
		return err
	}
	if err := e.AddPool(deployer, engine.TokenAddress, false, 100, big.NewInt(10), 50, false); err != nil {
		return err
	}
	if err := e.FundStakingRewards(deployer, big.NewInt(10_000_000)); err != nil {
		return err
	}

	if err := e.Transfer(deployer, trader, big.NewInt(1_000_000)); err != nil {
		return err
	}
	if err := e.Approve(trader, engine.StakingAddress, big.NewInt(1_000_000)); err != nil {
		return err
	}

	for i := uint32(0); i < blocks; i++ {
		e.MineBlocks(1)
		switch i % 4 {
		case 0:
			err = e.Transfer(trader, pair, big.NewInt(1_000))
		case 1:
			err = e.Transfer(pair, trader, big.NewInt(1_000))
		case 2:
			err = e.Deposit(trader, 1, big.NewInt(100))
		case 3:
			_, err = e.Claim(trader, 1)
		}
		if err != nil {
			return err
		}
	}

	supply, err := e.TotalSupply()
	if err != nil {
		return err
	}
	burned, err := e.TotalBurned()
	if err != nil {
		return err
	}
	treasuryBal, err := e.BalanceOf(treasury)
	if err != nil {
		return err
	}
	staked, err := e.StakingBalance(1, trader)
	if err != nil {
		return err
	}
	log.Info("simulation finished",
		"blocks", blocks,
		"supply", supply,
		"burned", burned,
		"treasury", treasuryBal,
		"staked", staked,
	)
	return nil
}
