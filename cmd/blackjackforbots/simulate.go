package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lox/blackjackforbots/cmd/blackjackforbots/shared"
	"github.com/lox/blackjackforbots/internal/simulator"
)

// SimulateCmd runs bot-only sessions in parallel
type SimulateCmd struct {
	Sessions    int      `kong:"default='100',help='Number of sessions to simulate'"`
	Rounds      int      `kong:"default='100',help='Rounds per session'"`
	Decks       int      `kong:"default='6',help='Decks in the shoe'"`
	Balance     int      `kong:"default='500',help='Starting balance per bot'"`
	Bet         int      `kong:"default='10',help='Fixed bet per round'"`
	Strategies  []string `kong:"default='basic,threshold,random',help='Bot strategies to seat'"`
	Seed        *int64   `kong:"help='Deterministic RNG seed (optional)'"`
	Concurrency int      `kong:"default='0',help='Parallel sessions (0 = number of CPUs)'"`
	Debug       bool     `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("starting simulation",
		"sessions", c.Sessions,
		"rounds", c.Rounds,
		"strategies", c.Strategies,
		"seed", seed)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	sim := simulator.New(simulator.Config{
		Sessions:        c.Sessions,
		Rounds:          c.Rounds,
		Decks:           c.Decks,
		StartingBalance: c.Balance,
		DefaultBet:      c.Bet,
		Strategies:      c.Strategies,
		Seed:            seed,
		Concurrency:     concurrency,
		Logger:          logger,
	})

	result, err := sim.Run(shared.SetupSignalHandler())
	if err != nil {
		return err
	}
	fmt.Print(result.Summary())
	return nil
}
