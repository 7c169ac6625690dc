package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjackforbots/internal/game"
)

var (
	chartTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	chartUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	chartDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// sparkline scales values into the eight-level block character ramp.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

// Render formats a session summary with a balance sparkline per player.
func Render(session *Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", chartTitleStyle.Render(fmt.Sprintf("Session summary (%d rounds)", session.Rounds)))
	for _, p := range session.Players {
		trendStyle := chartUpStyle
		if p.Sum < 0 {
			trendStyle = chartDownStyle
		}

		fmt.Fprintf(&b, "\n%s  balance $%d  net %+.0f\n", p.Name, p.Final, p.Sum)
		fmt.Fprintf(&b, "  %s\n", trendStyle.Render(sparkline(p.Banked)))
		fmt.Fprintf(&b, "  rounds %d  wagered $%d  mean %+.2f  median %+.2f  stddev %.2f\n",
			p.Rounds, p.Wagered, p.Mean(), p.Median(), p.StdDev())
		fmt.Fprintf(&b, "  %s\n", resultLine(p.Results))
	}
	return b.String()
}

func resultLine(results map[game.Result]int) string {
	parts := make([]string, 0, 5)
	for _, r := range []game.Result{
		game.ResultBlackjack, game.ResultWin, game.ResultPush,
		game.ResultLose, game.ResultBusted,
	} {
		if n := results[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r, n))
		}
	}
	if len(parts) == 0 {
		return "no completed rounds"
	}
	return strings.Join(parts, "  ")
}
