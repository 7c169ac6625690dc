// Package display renders engine events to a terminal and collects human
// input. It subscribes to game events rather than being called by the
// engine, so the engine stays display-agnostic.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Console is a line-oriented renderer and prompt. The clock is injected so
// tests can run the deal pacing without real sleeps.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	clock     quartz.Clock
	dealDelay time.Duration
	color     bool
}

// NewConsole creates a console over the given streams. A zero dealDelay
// disables pacing entirely.
func NewConsole(in io.Reader, out io.Writer, clock quartz.Clock, dealDelay time.Duration) *Console {
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		clock:     clock,
		dealDelay: dealDelay,
		color:     termenv.ColorProfile() != termenv.Ascii,
	}
}

// Printf writes formatted output to the console.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine reads one trimmed line of input.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Prompt prints a message and reads the response on the same line.
func (c *Console) Prompt(msg string) (string, error) {
	c.Printf("%s", msg)
	return c.ReadLine()
}

// pause blocks for the configured deal delay, keeping dealt cards readable
// at human speed.
func (c *Console) pause() {
	if c.dealDelay <= 0 {
		return
	}
	fired := make(chan struct{})
	timer := c.clock.AfterFunc(c.dealDelay, func() {
		close(fired)
	})
	defer timer.Stop()
	<-fired
}

func (c *Console) styled(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}

func (c *Console) formatCard(card deck.Card) string {
	if card.IsRed() {
		return c.styled(RedCardStyle, card.String())
	}
	return c.styled(BlackCardStyle, card.String())
}

func (c *Console) formatHand(h *game.Hand) string {
	parts := make([]string, 0, h.NumCards())
	for _, card := range h.Cards() {
		parts = append(parts, c.formatCard(card))
	}
	return fmt.Sprintf("[%s] %d", strings.Join(parts, " "), h.Value())
}

// HandleEvent renders an engine event. Subscribe it with
// Engine.Subscribe(console.HandleEvent).
func (c *Console) HandleEvent(ev game.Event) {
	switch e := ev.(type) {
	case game.ShoeReshuffledEvent:
		c.Println(c.styled(InfoStyle, fmt.Sprintf("Shuffling a fresh shoe (%d cards)", e.Remaining)))

	case game.RoundStartEvent:
		c.Println()
		c.Println(c.styled(HeaderStyle, fmt.Sprintf(" Round %d ", e.Round)))

	case game.CardsDealtEvent:
		for _, p := range e.Players {
			c.Printf("%s: %s\n", p.Name, c.formatHand(p.ActiveHand()))
		}
		c.Printf("%s: [?? %s]\n", c.styled(DealerStyle, "Dealer"), c.formatCard(e.DealerUpCard))
		c.pause()

	case game.TurnStartEvent:
		if e.HandIndex > 0 {
			c.Println(c.styled(InfoStyle, fmt.Sprintf("%s plays hand %d", e.Player.Name, e.HandIndex+1)))
		}

	case game.PlayerActionEvent:
		c.Printf("%s %ss: %s\n", e.Player.Name, e.Action, c.formatHand(e.Hand))
		c.pause()

	case game.ActionRejectedEvent:
		c.Println(c.styled(ErrorStyle, fmt.Sprintf("Cannot %s: %v", e.Action, e.Err)))

	case game.DealerTurnEvent:
		c.Printf("%s reveals: %s\n", c.styled(DealerStyle, "Dealer"), c.formatHand(e.Hand))
		c.pause()

	case game.DealerCardEvent:
		c.Printf("%s draws %s: %s\n", c.styled(DealerStyle, "Dealer"), c.formatCard(e.Card), c.formatHand(e.Hand))
		c.pause()

	case game.HandSettledEvent:
		c.Println(c.settlementLine(e))

	case game.RoundEndEvent:
		c.Println()
	}
}

func (c *Console) settlementLine(e game.HandSettledEvent) string {
	switch e.Settlement.Result {
	case game.ResultBlackjack:
		return c.styled(SuccessStyle, fmt.Sprintf("%s has blackjack! Wins $%d", e.Player.Name, e.Settlement.Payout-e.Player.CurrentBet()))
	case game.ResultWin:
		return c.styled(SuccessStyle, fmt.Sprintf("%s wins $%d", e.Player.Name, e.Settlement.Payout-e.Player.CurrentBet()))
	case game.ResultPush:
		return c.styled(WarningStyle, fmt.Sprintf("%s pushes, stake returned", e.Player.Name))
	case game.ResultBusted:
		return c.styled(ErrorStyle, fmt.Sprintf("%s busts with %d", e.Player.Name, e.Hand.Value()))
	default:
		return c.styled(ErrorStyle, fmt.Sprintf("%s loses $%d", e.Player.Name, e.Player.CurrentBet()))
	}
}

// PromptAction asks a human for their move, re-prompting until the input
// maps to an action. Number hotkeys mirror the listed order.
func (c *Console) PromptAction(v game.View) game.Action {
	options := []string{"(1) hit", "(2) stand"}
	if v.CanDouble {
		options = append(options, "(3) double")
	}
	if v.CanSplit {
		options = append(options, "(4) split")
	}
	c.Printf("Your hand: %s vs dealer %s\n", handSummary(v), c.formatCard(v.DealerUpCard))

	for {
		input, err := c.Prompt(strings.Join(options, "  ") + " > ")
		if err != nil {
			// Input stream gone; stand rather than spin.
			return game.Stand
		}
		switch strings.ToLower(input) {
		case "1", "h", "hit":
			return game.Hit
		case "2", "s", "stand":
			return game.Stand
		case "3", "d", "double":
			if v.CanDouble {
				return game.Double
			}
		case "4", "p", "split":
			if v.CanSplit {
				return game.Split
			}
		}
		c.Println(c.styled(ErrorStyle, fmt.Sprintf("Unrecognised choice %q", input)))
	}
}

func handSummary(v game.View) string {
	parts := make([]string, 0, len(v.Cards))
	for _, card := range v.Cards {
		parts = append(parts, card.String())
	}
	return fmt.Sprintf("[%s] %d", strings.Join(parts, " "), v.HandValue)
}
