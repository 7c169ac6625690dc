package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
)

func TestPlaceBet(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)

	if err := p.PlaceBet(30); err != nil {
		t.Fatalf("PlaceBet(30) error: %v", err)
	}
	if p.Balance() != 70 {
		t.Errorf("balance = %d, want 70", p.Balance())
	}
	if p.CurrentBet() != 30 {
		t.Errorf("current bet = %d, want 30", p.CurrentBet())
	}
}

func TestPlaceBetValidation(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)

	if err := p.PlaceBet(0); !errors.Is(err, ErrInvalidBet) {
		t.Errorf("PlaceBet(0) = %v, want ErrInvalidBet", err)
	}
	if err := p.PlaceBet(-5); !errors.Is(err, ErrInvalidBet) {
		t.Errorf("PlaceBet(-5) = %v, want ErrInvalidBet", err)
	}
	if err := p.PlaceBet(101); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("PlaceBet(101) = %v, want ErrInsufficientBalance", err)
	}
	// Failed bets must not touch state.
	if p.Balance() != 100 || p.CurrentBet() != 0 {
		t.Errorf("state mutated by rejected bets: balance=%d bet=%d", p.Balance(), p.CurrentBet())
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)
	p.Hit(card(deck.Eight))
	p.Hit(card(deck.Eight))

	if err := p.Split(); err != nil {
		t.Fatalf("Split() error: %v", err)
	}
	if len(p.Hands()) != 2 {
		t.Fatalf("hands = %d, want 2", len(p.Hands()))
	}
	for i, h := range p.Hands() {
		if h.NumCards() != 1 {
			t.Errorf("hand %d has %d cards, want 1", i, h.NumCards())
		}
	}

	// One split per round.
	p.Hands()[0].AddCard(card(deck.Eight))
	if err := p.Split(); !errors.Is(err, ErrNotSplittable) {
		t.Errorf("second Split() = %v, want ErrNotSplittable", err)
	}
}

func TestSplitValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ranks []deck.Rank
	}{
		{"unequal ranks", []deck.Rank{deck.Seven, deck.Eight}},
		{"three cards", []deck.Rank{deck.Seven, deck.Seven, deck.Seven}},
		{"one card", []deck.Rank{deck.Seven}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Ian", 100)
			for _, r := range tt.ranks {
				p.Hit(card(r))
			}
			if err := p.Split(); !errors.Is(err, ErrNotSplittable) {
				t.Errorf("Split() = %v, want ErrNotSplittable", err)
			}
			if len(p.Hands()) != 1 {
				t.Errorf("hands = %d after failed split, want 1", len(p.Hands()))
			}
		})
	}
}

func TestDoubleDown(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)
	if err := p.PlaceBet(20); err != nil {
		t.Fatal(err)
	}
	p.Hit(card(deck.Five))
	p.Hit(card(deck.Six))

	if err := p.DoubleDown(card(deck.Ten)); err != nil {
		t.Fatalf("DoubleDown() error: %v", err)
	}
	if p.CurrentBet() != 40 {
		t.Errorf("bet = %d after double, want 40", p.CurrentBet())
	}
	if p.Balance() != 60 {
		t.Errorf("balance = %d after double, want 60", p.Balance())
	}
	if p.ActiveHand().NumCards() != 3 {
		t.Errorf("hand has %d cards after double, want 3", p.ActiveHand().NumCards())
	}
}

func TestDoubleDownAfterHit(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)
	if err := p.PlaceBet(20); err != nil {
		t.Fatal(err)
	}
	p.Hit(card(deck.Five))
	p.Hit(card(deck.Six))
	p.Hit(card(deck.Two)) // the hit forfeits the double

	if err := p.DoubleDown(card(deck.Ten)); !errors.Is(err, ErrNotDoubleable) {
		t.Errorf("DoubleDown() = %v, want ErrNotDoubleable", err)
	}
	if p.CurrentBet() != 20 || p.Balance() != 80 {
		t.Errorf("state mutated by rejected double: bet=%d balance=%d", p.CurrentBet(), p.Balance())
	}
}

func TestDoubleDownInsufficientBalance(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 30)
	if err := p.PlaceBet(20); err != nil {
		t.Fatal(err)
	}
	p.Hit(card(deck.Five))
	p.Hit(card(deck.Six))

	// Balance of 10 cannot cover doubling a 20 bet.
	if err := p.DoubleDown(card(deck.Ten)); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("DoubleDown() = %v, want ErrInsufficientBalance", err)
	}
}

func TestDoubleDownOnSplitHand(t *testing.T) {
	t.Parallel()
	// The active hand has two cards after a split is dealt, so doubling is
	// legal there under the active-hand rule.
	p := NewPlayer("Ian", 100)
	if err := p.PlaceBet(10); err != nil {
		t.Fatal(err)
	}
	p.Hit(card(deck.Eight))
	p.Hit(card(deck.Eight))
	if err := p.Split(); err != nil {
		t.Fatal(err)
	}
	p.Hands()[0].AddCard(card(deck.Three))
	p.Hands()[1].AddCard(card(deck.Two))

	if err := p.DoubleDown(card(deck.Ten)); err != nil {
		t.Errorf("DoubleDown() on split hand = %v, want nil", err)
	}
}

func TestResetForNewRound(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)
	if err := p.PlaceBet(10); err != nil {
		t.Fatal(err)
	}
	p.Hit(card(deck.Eight))
	p.Hit(card(deck.Eight))
	p.LogAction(Hit, card(deck.Five))
	if err := p.Split(); err != nil {
		t.Fatal(err)
	}
	p.setResult(ResultWin)

	p.ResetForNewRound()

	if len(p.Hands()) != 1 || p.Hands()[0].NumCards() != 0 {
		t.Error("reset should leave one empty hand")
	}
	if p.CurrentBet() != 0 {
		t.Errorf("bet = %d after reset, want 0", p.CurrentBet())
	}
	if len(p.Actions()) != 0 {
		t.Errorf("actions = %d after reset, want 0", len(p.Actions()))
	}
	if p.Result() != ResultNone {
		t.Errorf("result = %q after reset, want unset", p.Result())
	}
	if p.Balance() != 90 {
		t.Errorf("balance = %d after reset, want 90 (balances carry over)", p.Balance())
	}
	if !func() bool { p.Hit(card(deck.Nine)); p.Hit(card(deck.Nine)); return p.CanSplit() }() {
		t.Error("split flag should clear on reset")
	}
}

func TestAdvanceHand(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Ian", 100)
	p.Hit(card(deck.Nine))
	p.Hit(card(deck.Nine))
	if err := p.Split(); err != nil {
		t.Fatal(err)
	}

	if p.ActiveHandIndex() != 0 {
		t.Errorf("active hand = %d after split, want 0", p.ActiveHandIndex())
	}
	if !p.AdvanceHand() {
		t.Fatal("AdvanceHand() should succeed with a second hand")
	}
	if p.ActiveHandIndex() != 1 {
		t.Errorf("active hand = %d, want 1", p.ActiveHandIndex())
	}
	if p.AdvanceHand() {
		t.Error("AdvanceHand() past the last hand should return false")
	}
}
