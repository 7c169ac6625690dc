package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	rand "math/rand/v2"

	"github.com/coder/quartz"

	"github.com/lox/blackjackforbots/cmd/blackjackforbots/shared"
	"github.com/lox/blackjackforbots/internal/config"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/session"
)

// PlayCmd runs an interactive table
type PlayCmd struct {
	Config  string   `kong:"default='blackjack.hcl',help='Table config file (HCL)'"`
	Players []string `kong:"help='Human player names, overriding the config'"`
	Seed    *int64   `kong:"help='Deterministic RNG seed (optional)'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
	GodMode bool     `kong:"hidden='',help='Deal humans nothing but naturals'"`
}

func (c *PlayCmd) Run() error {
	// Gameplay renders through the display layer; keep the logger quiet so
	// it does not interleave with the table output.
	logger := shared.SetupQuietLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if len(c.Players) > 0 {
		cfg.Players = nil
		for _, name := range c.Players {
			cfg.Players = append(cfg.Players, config.PlayerConfig{Name: name})
		}
	}
	if c.GodMode {
		cfg.GodMode = true
	}
	if len(cfg.Players) == 0 {
		players, err := promptPlayerNames(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		cfg.Players = players
	}

	var rng *rand.Rand
	if c.Seed != nil {
		logger.Info("using deterministic seed", "seed", *c.Seed)
		rng = randutil.New(*c.Seed)
	} else {
		rng = randutil.New(time.Now().UnixNano())
	}

	s, err := session.New(cfg, rng, os.Stdin, os.Stdout, quartz.NewReal(), logger)
	if err != nil {
		return err
	}
	return s.Run()
}

// promptPlayerNames collects human seats when the config defines none. An
// empty first entry runs a bots-only table.
func promptPlayerNames(in *os.File, out *os.File) ([]config.PlayerConfig, error) {
	reader := bufio.NewReader(in)
	var players []config.PlayerConfig

	for {
		fmt.Fprintf(out, "Player %d name (enter to finish): ", len(players)+1)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return players, nil
		}
		name := strings.TrimSpace(line)
		if name == "" {
			return players, nil
		}
		players = append(players, config.PlayerConfig{Name: name})
	}
}
