package strategy

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/game"
)

// Random picks a uniform random legal action. Useful as a baseline in
// simulations and as chaos cover in engine tests.
type Random struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a new Random instance.
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{rng: rng, logger: logger}
}

func (s *Random) Decide(v game.View) game.Action {
	actions := []game.Action{game.Hit, game.Stand}
	if v.CanDouble {
		actions = append(actions, game.Double)
	}
	return actions[s.rng.IntN(len(actions))]
}

func (s *Random) WantsSplit(game.View) bool {
	return s.rng.IntN(2) == 0
}
