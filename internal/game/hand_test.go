package game

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
)

func card(rank deck.Rank) deck.Card {
	return deck.NewCard(deck.Spades, rank)
}

func cards(ranks ...deck.Rank) []deck.Card {
	out := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		out[i] = card(r)
	}
	return out
}

func TestHandValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ranks []deck.Rank
		want  int
	}{
		{"empty hand", nil, 0},
		{"single numeral", []deck.Rank{deck.Seven}, 7},
		{"two numerals", []deck.Rank{deck.Seven, deck.Eight}, 15},
		{"face cards", []deck.Rank{deck.Jack, deck.Queen}, 20},
		{"natural", []deck.Rank{deck.Ace, deck.King}, 21},
		{"soft seventeen", []deck.Rank{deck.Ace, deck.Six}, 17},
		{"ace demoted", []deck.Rank{deck.Ace, deck.Six, deck.Nine}, 16},
		{"two aces and nine", []deck.Rank{deck.Ace, deck.Ace, deck.Nine}, 21},
		{"four aces", []deck.Rank{deck.Ace, deck.Ace, deck.Ace, deck.Ace}, 14},
		{"bust shows minimum", []deck.Rank{deck.Ten, deck.Ten, deck.Five}, 25},
		{"bust with ace shows minimum", []deck.Rank{deck.Ten, deck.Ten, deck.Ace, deck.Five}, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand(cards(tt.ranks...)...)
			if got := h.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	t.Parallel()
	if !NewHand(cards(deck.Ace, deck.King)...).IsBlackjack() {
		t.Error("A+K should be blackjack")
	}
	if NewHand(cards(deck.Ace, deck.King, deck.Ten)...).IsBlackjack() {
		t.Error("three-card 21 is not blackjack")
	}
	if NewHand(cards(deck.Seven, deck.Seven, deck.Seven)...).IsBlackjack() {
		t.Error("7+7+7 is 21 but not blackjack")
	}
	if NewHand(cards(deck.Ten, deck.Nine)...).IsBlackjack() {
		t.Error("19 is not blackjack")
	}
}

func TestHandIsBusted(t *testing.T) {
	t.Parallel()
	if !NewHand(cards(deck.Ten, deck.Ten, deck.Five)...).IsBusted() {
		t.Error("25 should be busted")
	}
	if NewHand(cards(deck.Ten, deck.Ten, deck.Ace)...).IsBusted() {
		t.Error("21 with demoted ace should not be busted")
	}
	if NewHand().IsBusted() {
		t.Error("empty hand should not be busted")
	}
}

func TestHandValueNeverExceedsTargetWhenAvoidable(t *testing.T) {
	t.Parallel()
	// Property from the valuation contract: whenever some combination of
	// ace values stays at or below 21, Value reports one of those.
	hands := [][]deck.Rank{
		{deck.Ace, deck.Ace},
		{deck.Ace, deck.Ace, deck.Ace, deck.Eight},
		{deck.Ace, deck.Nine, deck.Ace},
		{deck.Ace, deck.Five, deck.Five},
	}
	for _, ranks := range hands {
		h := NewHand(cards(ranks...)...)
		if got := h.Value(); got > 21 {
			t.Errorf("Value(%v) = %d, exceeds 21 despite a valid combination", ranks, got)
		}
	}
}

func TestHandString(t *testing.T) {
	t.Parallel()
	h := NewHand(deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King))
	if got := h.String(); got != "[A♠ K♥] 21" {
		t.Errorf("String() = %q", got)
	}
}
