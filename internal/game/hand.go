package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/blackjackforbots/internal/deck"
)

// blackjack is the target total.
const blackjack = 21

// Hand is one participant's ordered cards for a round, or one sub-hand
// after a split. Cards are append-only until the hand is split or reset.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, 8)}
	h.cards = append(h.cards, cards...)
	return h
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in deal order. Callers must not mutate the slice.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// NumCards returns the number of cards in the hand.
func (h *Hand) NumCards() int {
	return len(h.cards)
}

// Value resolves the hand's total. Each card contributes one of its
// possible values (an Ace counts 1 or 11); the result is the highest
// combination total not exceeding 21, or the lowest total when every
// combination busts. An empty hand values 0.
//
// The fold tracks the set of distinct achievable totals rather than
// enumerating ace assignments: duplicates collapse, so k aces produce k+1
// candidate totals instead of 2^k.
func (h *Hand) Value() int {
	totals := make([]int, 1, 12)
	for _, card := range h.cards {
		next := make([]int, 0, len(totals)+1)
		for _, total := range totals {
			for _, v := range card.Values() {
				if sum := total + v; !slices.Contains(next, sum) {
					next = append(next, sum)
				}
			}
		}
		totals = next
	}

	best := -1
	lowest := totals[0]
	for _, total := range totals {
		if total < lowest {
			lowest = total
		}
		if total <= blackjack && total > best {
			best = total
		}
	}
	if best >= 0 {
		return best
	}
	return lowest
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totalling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == blackjack
}

// IsBusted reports whether the hand's resolved value exceeds 21.
func (h *Hand) IsBusted() bool {
	return h.Value() > blackjack
}

// CardStrings returns the cards as strings, for round log records.
func (h *Hand) CardStrings() []string {
	strs := make([]string, len(h.cards))
	for i, c := range h.cards {
		strs[i] = c.String()
	}
	return strs
}

// String returns the hand's cards and resolved value, e.g. "[A♠ K♥] 21".
func (h *Hand) String() string {
	return fmt.Sprintf("[%s] %d", strings.Join(h.CardStrings(), " "), h.Value())
}
