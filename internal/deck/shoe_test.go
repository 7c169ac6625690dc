package deck

import (
	"errors"
	"testing"

	"github.com/lox/blackjackforbots/internal/randutil"
)

func TestShoeSize(t *testing.T) {
	t.Parallel()
	for _, decks := range []int{1, 2, 6} {
		s := NewShoe(decks, randutil.New(1))
		if got := s.Remaining(); got != decks*52 {
			t.Errorf("NewShoe(%d) remaining = %d, want %d", decks, got, decks*52)
		}
	}
}

func TestShoeDrawDecrementsAndNeverRepeats(t *testing.T) {
	t.Parallel()
	s := NewShoe(2, randutil.New(42))
	total := s.Remaining()

	seen := make(map[Card]int)
	for i := 0; i < total; i++ {
		card, err := s.Draw()
		if err != nil {
			t.Fatalf("Draw() error on card %d: %v", i, err)
		}
		seen[card]++
		if want := total - i - 1; s.Remaining() != want {
			t.Fatalf("Remaining() = %d after %d draws, want %d", s.Remaining(), i+1, want)
		}
	}

	// Two decks: every distinct card appears exactly twice.
	if len(seen) != 52 {
		t.Errorf("drew %d distinct cards, want 52", len(seen))
	}
	for card, count := range seen {
		if count != 2 {
			t.Errorf("card %s drawn %d times, want 2", card, count)
		}
	}
}

func TestShoeDrawEmpty(t *testing.T) {
	t.Parallel()
	s := NewShoe(1, randutil.New(7))
	for s.Remaining() > 0 {
		if _, err := s.Draw(); err != nil {
			t.Fatalf("unexpected draw error: %v", err)
		}
	}

	_, err := s.Draw()
	if !errors.Is(err, ErrShoeEmpty) {
		t.Errorf("Draw() on empty shoe = %v, want ErrShoeEmpty", err)
	}
}

func TestShoeSeededReproducibility(t *testing.T) {
	t.Parallel()
	a := NewShoe(1, randutil.New(99))
	b := NewShoe(1, randutil.New(99))

	for i := 0; i < 52; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("card %d differs for identical seeds: %s vs %s", i, ca, cb)
		}
	}
}

func TestStackedShoeDealsInOrder(t *testing.T) {
	t.Parallel()
	want := []Card{
		NewCard(Spades, Ace),
		NewCard(Hearts, King),
		NewCard(Clubs, Seven),
	}
	s := NewStackedShoe(randutil.New(1), want...)

	for i, w := range want {
		got, err := s.Draw()
		if err != nil {
			t.Fatalf("Draw() error: %v", err)
		}
		if got != w {
			t.Errorf("draw %d = %s, want %s", i, got, w)
		}
	}
}
