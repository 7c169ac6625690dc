package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(input), out, quartz.NewReal(), 0)
	return c, out
}

func promptView(canDouble, canSplit bool) game.View {
	return game.View{
		Cards: []deck.Card{
			deck.NewCard(deck.Spades, deck.Eight),
			deck.NewCard(deck.Hearts, deck.Eight),
		},
		HandValue:    16,
		DealerUpCard: deck.NewCard(deck.Clubs, deck.Six),
		CanDouble:    canDouble,
		CanSplit:     canSplit,
	}
}

func TestPromptActionHotkeys(t *testing.T) {
	tests := []struct {
		input string
		want  game.Action
	}{
		{"1\n", game.Hit},
		{"hit\n", game.Hit},
		{"2\n", game.Stand},
		{"s\n", game.Stand},
		{"3\n", game.Double},
		{"double\n", game.Double},
		{"4\n", game.Split},
		{"p\n", game.Split},
	}
	for _, tt := range tests {
		c, _ := newTestConsole(tt.input)
		assert.Equal(t, tt.want, c.PromptAction(promptView(true, true)), "input %q", tt.input)
	}
}

func TestPromptActionRepromptsOnInvalidInput(t *testing.T) {
	c, out := newTestConsole("banana\n1\n")
	action := c.PromptAction(promptView(true, true))
	assert.Equal(t, game.Hit, action)
	assert.Contains(t, out.String(), "Unrecognised choice")
}

func TestPromptActionRejectsUnavailableOptions(t *testing.T) {
	// Double and split hotkeys fall through to a re-prompt when illegal.
	c, _ := newTestConsole("3\n4\n2\n")
	action := c.PromptAction(promptView(false, false))
	assert.Equal(t, game.Stand, action)
}

func TestPromptActionHidesUnavailableOptions(t *testing.T) {
	c, out := newTestConsole("1\n")
	c.PromptAction(promptView(false, false))
	assert.NotContains(t, out.String(), "double")
	assert.NotContains(t, out.String(), "split")
}

func TestPromptActionStandsOnClosedInput(t *testing.T) {
	c, _ := newTestConsole("")
	assert.Equal(t, game.Stand, c.PromptAction(promptView(true, false)))
}

func TestHandleEventCardsDealt(t *testing.T) {
	c, out := newTestConsole("")
	p := game.NewPlayer("Ian", 100)
	p.Hit(deck.NewCard(deck.Spades, deck.Ten))
	p.Hit(deck.NewCard(deck.Hearts, deck.Nine))

	c.HandleEvent(game.CardsDealtEvent{
		DealerUpCard: deck.NewCard(deck.Clubs, deck.Six),
		Players:      []*game.Player{p},
	})

	s := out.String()
	assert.Contains(t, s, "Ian")
	assert.Contains(t, s, "19")
	assert.Contains(t, s, "??")
	assert.Contains(t, s, "6♣")
}

func TestHandleEventSettlement(t *testing.T) {
	p := game.NewPlayer("Ian", 100)
	require.NoError(t, p.PlaceBet(10))
	hand := game.NewHand(
		deck.NewCard(deck.Spades, deck.Ten),
		deck.NewCard(deck.Hearts, deck.Nine),
	)

	tests := []struct {
		result game.Result
		payout int
		want   string
	}{
		{game.ResultWin, 20, "Ian wins $10"},
		{game.ResultBlackjack, 25, "blackjack"},
		{game.ResultPush, 10, "pushes"},
		{game.ResultLose, 0, "loses $10"},
		{game.ResultBusted, 0, "busts"},
	}
	for _, tt := range tests {
		c, out := newTestConsole("")
		c.HandleEvent(game.HandSettledEvent{
			Player:     p,
			Hand:       hand,
			Settlement: game.Settlement{Result: tt.result, Payout: tt.payout},
		})
		assert.Contains(t, out.String(), tt.want, "result %s", tt.result)
	}
}

func TestReadLineTrims(t *testing.T) {
	c, _ := newTestConsole("  hello  \n")
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}
