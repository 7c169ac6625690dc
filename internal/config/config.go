// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjackforbots/internal/strategy"
)

// Config represents the complete table configuration
type Config struct {
	Decks           int            `hcl:"decks,optional"`
	StartingBalance int            `hcl:"starting_balance,optional"`
	DefaultBet      int            `hcl:"default_bet,optional"`
	DealDelayMS     int            `hcl:"deal_delay_ms,optional"`
	LogRounds       *bool          `hcl:"log_rounds,optional"`
	LogDir          string         `hcl:"log_dir,optional"`
	ShowChart       *bool          `hcl:"show_chart,optional"`
	GodMode         bool           `hcl:"god_mode,optional"`
	Players         []PlayerConfig `hcl:"player,block"`
	Bots            []BotConfig    `hcl:"bot,block"`
}

// PlayerConfig defines a human seat
type PlayerConfig struct {
	Name string `hcl:"name,label"`
}

// BotConfig defines a bot seat
type BotConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Bet      int    `hcl:"bet,optional"`
}

// Default returns the default table configuration
func Default() *Config {
	logRounds := true
	showChart := true
	return &Config{
		Decks:           6,
		StartingBalance: 500,
		DefaultBet:      10,
		DealDelayMS:     600,
		LogRounds:       &logRounds,
		LogDir:          "logs",
		ShowChart:       &showChart,
		Bots: []BotConfig{
			{Name: "Basil", Strategy: "basic", Bet: 10},
			{Name: "Terry", Strategy: "threshold", Bet: 10},
		},
	}
}

// Load loads table configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if config.Decks == 0 {
		config.Decks = defaults.Decks
	}
	if config.StartingBalance == 0 {
		config.StartingBalance = defaults.StartingBalance
	}
	if config.DefaultBet == 0 {
		config.DefaultBet = defaults.DefaultBet
	}
	if config.DealDelayMS == 0 {
		config.DealDelayMS = defaults.DealDelayMS
	}
	if config.LogRounds == nil {
		config.LogRounds = defaults.LogRounds
	}
	if config.LogDir == "" {
		config.LogDir = defaults.LogDir
	}
	if config.ShowChart == nil {
		config.ShowChart = defaults.ShowChart
	}

	// Apply defaults to bots
	for i := range config.Bots {
		if config.Bots[i].Strategy == "" {
			config.Bots[i].Strategy = "basic"
		}
		if config.Bots[i].Bet == 0 {
			config.Bots[i].Bet = config.DefaultBet
		}
	}

	return &config, nil
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Decks < 1 || c.Decks > 8 {
		return fmt.Errorf("decks must be between 1 and 8, got %d", c.Decks)
	}
	if c.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive, got %d", c.StartingBalance)
	}
	if c.DefaultBet <= 0 {
		return fmt.Errorf("default bet must be positive, got %d", c.DefaultBet)
	}
	if c.DefaultBet > c.StartingBalance {
		return fmt.Errorf("default bet %d exceeds starting balance %d", c.DefaultBet, c.StartingBalance)
	}
	if len(c.Players)+len(c.Bots) == 0 {
		return fmt.Errorf("at least one player or bot must be configured")
	}

	seen := map[string]bool{}
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("duplicate seat name %q", p.Name)
		}
		seen[p.Name] = true
	}
	for _, bot := range c.Bots {
		if seen[bot.Name] {
			return fmt.Errorf("duplicate seat name %q", bot.Name)
		}
		seen[bot.Name] = true
		if !slices.Contains(strategy.Names(), bot.Strategy) {
			return fmt.Errorf("bot %s: invalid strategy %q (valid: %v)", bot.Name, bot.Strategy, strategy.Names())
		}
		if bot.Bet <= 0 {
			return fmt.Errorf("bot %s: bet must be positive", bot.Name)
		}
	}

	return nil
}

// DealDelay returns the configured pause between dealt cards.
func (c *Config) DealDelay() time.Duration {
	return time.Duration(c.DealDelayMS) * time.Millisecond
}
