package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// hardActions is the hard-total chart: one row per dealer up card (2 through
// ace-as-11), one column per hand total (4 through 21). H hits, S stands,
// D doubles when allowed and hits otherwise.
//
// TODO: add a soft-total table; soft hands currently use the hard chart at
// their high value, which plays soft 17 and 18 too passively.
var hardActions = [10]string{
	"HHHHHHDDHSSSSSSSSS", // dealer 2
	"HHHHHDDDHSSSSSSSSS", // dealer 3
	"HHHHHDDDSSSSSSSSSS", // dealer 4
	"HHHHHDDDSSSSSSSSSS", // dealer 5
	"HHHHHDDDSSSSSSSSSS", // dealer 6
	"HHHHHHDDHHHHHSSSSS", // dealer 7
	"HHHHHHDDHHHHHSSSSS", // dealer 8
	"HHHHHHDDHHHHHSSSSS", // dealer 9
	"HHHHHHHDHHHHHSSSSS", // dealer 10
	"HHHHHHHHHHHHHSSSSS", // dealer ace
}

// Basic plays the textbook chart: hard totals from hardActions, pair splits
// from the standard pair rules. It is the strongest built-in policy.
type Basic struct {
	logger *log.Logger
}

// NewBasic creates a new Basic instance.
func NewBasic(logger *log.Logger) *Basic {
	return &Basic{logger: logger}
}

func (s *Basic) Decide(v game.View) game.Action {
	total := v.HandValue
	dealer := v.DealerUpCard.UpCardValue()
	if total < 4 || total > 21 || dealer < 2 || dealer > 11 {
		return game.Stand
	}

	switch hardActions[dealer-2][total-4] {
	case 'H':
		return game.Hit
	case 'D':
		if v.CanDouble {
			return game.Double
		}
		return game.Hit
	default:
		return game.Stand
	}
}

// WantsSplit splits aces and eights unconditionally, never splits tens,
// fives or fours, and splits the remaining pairs only against a weak dealer
// up card.
func (s *Basic) WantsSplit(v game.View) bool {
	if len(v.Cards) != 2 || v.Cards[0].Rank != v.Cards[1].Rank {
		return false
	}
	dealer := v.DealerUpCard.UpCardValue()
	switch v.Cards[0].Rank {
	case deck.Ace, deck.Eight:
		return true
	case deck.Two, deck.Three, deck.Six, deck.Seven, deck.Nine:
		return dealer >= 2 && dealer <= 6
	default:
		return false
	}
}
