package display

import "github.com/lox/blackjackforbots/internal/game"

// Human is the strategy backing a human seat: every decision goes through
// the console prompt. Splits are offered inside the action prompt, so
// WantsSplit stays false and the engine never double-asks.
type Human struct {
	console *Console
}

// NewHuman creates a console-backed human strategy.
func NewHuman(console *Console) *Human {
	return &Human{console: console}
}

func (h *Human) Decide(v game.View) game.Action {
	return h.console.PromptAction(v)
}

func (h *Human) WantsSplit(game.View) bool { return false }
