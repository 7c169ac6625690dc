package game

import "github.com/lox/blackjackforbots/internal/deck"

// View is the read-only snapshot a Strategy decides from. It carries
// everything a decision policy may consult; strategies receive immutable
// state and return decisions, never mutating the game.
type View struct {
	Cards        []deck.Card
	HandValue    int
	HandSize     int
	DealerUpCard deck.Card
	Balance      int
	CurrentBet   int
	CanDouble    bool
	CanSplit     bool
}

// Strategy chooses actions for a participant. The built-in bots, the
// interactive console prompt, and any future learned agent all plug in
// through this one interface; the engine stays ignorant of concrete types.
type Strategy interface {
	// Decide returns the action to take for the viewed hand.
	Decide(v View) Action

	// WantsSplit reports whether the strategy would split the viewed pair.
	// The engine consults it only when a split is legal.
	WantsSplit(v View) bool
}
