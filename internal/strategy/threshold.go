package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/game"
)

// Threshold is the simplest policy: hit on 16 or less, stand otherwise.
// It never doubles or splits.
type Threshold struct {
	logger *log.Logger
}

// NewThreshold creates a new Threshold instance.
func NewThreshold(logger *log.Logger) *Threshold {
	return &Threshold{logger: logger}
}

func (s *Threshold) Decide(v game.View) game.Action {
	if v.HandValue <= 16 {
		return game.Hit
	}
	return game.Stand
}

func (s *Threshold) WantsSplit(game.View) bool { return false }
