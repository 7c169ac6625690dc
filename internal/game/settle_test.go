package game

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		hand       []deck.Rank
		dealer     []deck.Rank
		bet        int
		wantResult Result
		wantPayout int
	}{
		{"busted pays nothing", []deck.Rank{deck.Ten, deck.Ten, deck.Five}, []deck.Rank{deck.Ten, deck.Seven}, 10, ResultBusted, 0},
		{"busted even against dealer bust", []deck.Rank{deck.Ten, deck.Ten, deck.Five}, []deck.Rank{deck.Ten, deck.Six, deck.King}, 10, ResultBusted, 0},
		{"natural pays three to two", []deck.Rank{deck.Ace, deck.King}, []deck.Rank{deck.Ten, deck.Seven}, 10, ResultBlackjack, 25},
		{"natural odd bet rounds down", []deck.Rank{deck.Ace, deck.King}, []deck.Rank{deck.Ten, deck.Seven}, 5, ResultBlackjack, 12},
		{"natural beats dealer twenty-one", []deck.Rank{deck.Ace, deck.King}, []deck.Rank{deck.Seven, deck.Seven, deck.Seven}, 10, ResultBlackjack, 25},
		{"higher value wins double", []deck.Rank{deck.Ten, deck.Nine}, []deck.Rank{deck.Ten, deck.Seven}, 10, ResultWin, 20},
		{"dealer bust wins double", []deck.Rank{deck.Ten, deck.Two}, []deck.Rank{deck.Ten, deck.Six, deck.King}, 10, ResultWin, 20},
		{"equal values push", []deck.Rank{deck.Ten, deck.Seven}, []deck.Rank{deck.Nine, deck.Eight}, 10, ResultPush, 10},
		{"lower value loses", []deck.Rank{deck.Ten, deck.Six}, []deck.Rank{deck.Ten, deck.Seven}, 10, ResultLose, 0},
		{"three-card twenty-one is not a natural", []deck.Rank{deck.Seven, deck.Seven, deck.Seven}, []deck.Rank{deck.Ten, deck.Seven}, 10, ResultWin, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Resolve(NewHand(cards(tt.hand...)...), NewHand(cards(tt.dealer...)...), tt.bet)
			if s.Result != tt.wantResult {
				t.Errorf("result = %q, want %q", s.Result, tt.wantResult)
			}
			if s.Payout != tt.wantPayout {
				t.Errorf("payout = %d, want %d", s.Payout, tt.wantPayout)
			}
		})
	}
}
