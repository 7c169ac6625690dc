package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrShoeEmpty is returned by Draw when no cards remain. The engine's
// pre-deal reshuffle policy exists to keep this from happening mid-round;
// seeing it is a defect in the caller, not a condition to retry.
var ErrShoeEmpty = errors.New("shoe is empty, cannot draw card")

const deckSize = 52

// Shoe is the shuffled pool of cards a session draws from, built from one
// or more 52-card decks. The shoe carries no reshuffle policy of its own;
// the round engine decides when to replace it.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a shuffled shoe of numDecks decks. The RNG is injected so
// a fixed seed reproduces the full card order.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, numDecks*deckSize),
		rng:   rng,
	}
	for d := 0; d < numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.Shuffle()
	return s
}

// NewStackedShoe creates an unshuffled shoe that deals the given cards in
// order. It exists for tests and tooling that need full control over the
// deal; Shuffle still works if called.
func NewStackedShoe(rng *rand.Rand, cards ...Card) *Shoe {
	s := &Shoe{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	// Draw pops from the end, so store in reverse.
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

// Shuffle applies a Fisher-Yates shuffle to the remaining cards.
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the top card of the shoe.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeEmpty
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
