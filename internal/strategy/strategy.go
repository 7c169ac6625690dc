// Package strategy provides the built-in bot decision policies.
package strategy

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/game"
)

// New resolves a strategy by its configured name.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	switch name {
	case "threshold":
		return NewThreshold(logger), nil
	case "basic":
		return NewBasic(logger), nil
	case "random":
		return NewRandom(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (valid: %v)", name, Names())
	}
}

// Names lists the valid strategy names for config validation and help text.
func Names() []string {
	return []string{"basic", "random", "threshold"}
}
