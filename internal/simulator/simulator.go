// Package simulator plays unattended bot sessions for strategy comparison.
package simulator

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/stats"
	"github.com/lox/blackjackforbots/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions        int
	Rounds          int
	Decks           int
	StartingBalance int
	DefaultBet      int
	Strategies      []string
	Seed            int64
	Concurrency     int
	Logger          *log.Logger
}

// BotResult aggregates one strategy's performance across all sessions.
type BotResult struct {
	Strategy string
	Stats    *stats.PlayerStats  // one sample per session: net balance change
	Outcomes map[game.Result]int // per-round outcome counts
}

// Result is the outcome of a full simulation run
type Result struct {
	Sessions int
	Rounds   int // total rounds actually played
	Bots     []*BotResult
}

// Simulator runs blackjack session simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Simulator{config: config}
}

type sessionResult struct {
	finalBalances []int
	outcomes      []map[game.Result]int
	rounds        int
}

// Run executes all sessions and aggregates per-strategy results. Each
// session gets its own engine, shoe and derived seed, so results are
// reproducible whatever the concurrency.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	perSession := make([]sessionResult, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			sr, err := s.runSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			perSession[i] = sr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Sessions: s.config.Sessions}
	for _, name := range s.config.Strategies {
		result.Bots = append(result.Bots, &BotResult{
			Strategy: name,
			Stats:    &stats.PlayerStats{Name: name, Results: map[game.Result]int{}},
			Outcomes: map[game.Result]int{},
		})
	}
	for _, sr := range perSession {
		result.Rounds += sr.rounds
		for b, bot := range result.Bots {
			net := float64(sr.finalBalances[b] - s.config.StartingBalance)
			bot.Stats.Add(net, sr.finalBalances[b], s.config.DefaultBet*sr.rounds, game.ResultNone)
			for r, n := range sr.outcomes[b] {
				bot.Outcomes[r] += n
			}
		}
	}
	return result, nil
}

// runSession plays one full session to its round limit, or earlier if every
// bot goes broke.
func (s *Simulator) runSession(ctx context.Context, session int) (sessionResult, error) {
	rng := randutil.New(s.config.Seed + int64(session))

	seats := make([]*game.Seat, 0, len(s.config.Strategies))
	for i, name := range s.config.Strategies {
		strat, err := strategy.New(name, rng, s.config.Logger)
		if err != nil {
			return sessionResult{}, err
		}
		seats = append(seats, &game.Seat{
			Player:   game.NewPlayer(fmt.Sprintf("%s-%d", name, i+1), s.config.StartingBalance),
			Strategy: strat,
			Bettor:   game.FixedBettor{Amount: s.config.DefaultBet},
		})
	}

	engine := game.NewEngine(rng, s.config.Decks, seats, game.WithLogger(s.config.Logger))

	sr := sessionResult{
		finalBalances: make([]int, len(seats)),
		outcomes:      make([]map[game.Result]int, len(seats)),
	}
	for i := range sr.outcomes {
		sr.outcomes[i] = map[game.Result]int{}
	}

	for round := 0; round < s.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return sessionResult{}, err
		}
		if allBroke(seats) {
			break
		}
		record, err := engine.PlayRound()
		if err != nil {
			return sessionResult{}, err
		}
		sr.rounds++
		for i, pr := range record.Players {
			if pr.Result != game.ResultNone {
				sr.outcomes[i][pr.Result]++
			}
		}
	}

	for i, seat := range seats {
		sr.finalBalances[i] = seat.Player.Balance()
	}
	return sr, nil
}

func allBroke(seats []*game.Seat) bool {
	for _, seat := range seats {
		if seat.Player.Balance() > 0 {
			return false
		}
	}
	return true
}

// Summary formats per-strategy results for the terminal.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Simulated %d sessions (%d rounds played)\n", r.Sessions, r.Rounds)
	for _, bot := range r.Bots {
		fmt.Fprintf(&b, "\n%s\n", bot.Strategy)
		fmt.Fprintf(&b, "  net/session: mean %+.2f  median %+.2f  stddev %.2f\n",
			bot.Stats.Mean(), bot.Stats.Median(), bot.Stats.StdDev())
		fmt.Fprintf(&b, "  outcomes: %s\n", outcomeLine(bot.Outcomes))
	}
	return b.String()
}

func outcomeLine(outcomes map[game.Result]int) string {
	parts := make([]string, 0, 5)
	for _, result := range []game.Result{
		game.ResultBlackjack, game.ResultWin, game.ResultPush,
		game.ResultLose, game.ResultBusted,
	} {
		if n := outcomes[result]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", result, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "  ")
}
