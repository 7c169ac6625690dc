package main

import (
	"fmt"

	"github.com/lox/blackjackforbots/internal/stats"
)

// StatsCmd analyzes a recorded session
type StatsCmd struct {
	LogFile string `kong:"arg='',help='Session round log (JSON)'"`
	Balance int    `kong:"default='500',help='Starting balance the session began with'"`
}

func (c *StatsCmd) Run() error {
	records, err := stats.Load(c.LogFile)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s contains no rounds", c.LogFile)
	}
	fmt.Print(stats.Render(stats.Analyze(records, c.Balance)))
	return nil
}
