// Package session runs an interactive table: engine, console, round log
// and seat wiring driven by a table config.
package session

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjackforbots/internal/config"
	"github.com/lox/blackjackforbots/internal/display"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/roundlog"
	"github.com/lox/blackjackforbots/internal/stats"
	"github.com/lox/blackjackforbots/internal/strategy"
)

// Session owns one interactive table from deal to quit.
type Session struct {
	cfg     *config.Config
	console *display.Console
	engine  *game.Engine
	writer  *roundlog.Writer
	logger  *log.Logger
	seats   []*game.Seat
	records []*game.RoundRecord

	// exit is swapped out by tests; the default terminates the process.
	exit func(int)
}

// New builds a session from config: human seats prompt through the console,
// bot seats resolve their configured strategy.
func New(cfg *config.Config, rng *rand.Rand, in io.Reader, out io.Writer, clock quartz.Clock, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	console := display.NewConsole(in, out, clock, cfg.DealDelay())
	s := &Session{
		cfg:     cfg,
		console: console,
		logger:  logger.WithPrefix("session"),
		exit:    defaultExit,
	}

	for _, pc := range cfg.Players {
		s.seats = append(s.seats, &game.Seat{
			Player:   game.NewPlayer(pc.Name, cfg.StartingBalance),
			Strategy: display.NewHuman(console),
			Bettor:   &consoleBettor{session: s, defaultBet: cfg.DefaultBet},
			Human:    true,
		})
	}
	for _, bc := range cfg.Bots {
		strat, err := strategy.New(bc.Strategy, rng, logger)
		if err != nil {
			return nil, fmt.Errorf("bot %s: %w", bc.Name, err)
		}
		s.seats = append(s.seats, &game.Seat{
			Player:   game.NewPlayer(bc.Name, cfg.StartingBalance),
			Strategy: strat,
			Bettor:   game.FixedBettor{Amount: bc.Bet},
		})
	}

	s.engine = game.NewEngine(rng, cfg.Decks, s.seats,
		game.WithLogger(logger),
		game.WithGodMode(cfg.GodMode),
		game.WithEventHandler(console.HandleEvent))

	if cfg.LogRounds != nil && *cfg.LogRounds {
		writer, err := roundlog.NewWriter(cfg.LogDir, clock)
		if err != nil {
			return nil, err
		}
		s.writer = writer
		console.Printf("Logging rounds to %s\n", writer.Path())
	}

	return s, nil
}

// Engine exposes the underlying engine, mainly for commands and tests.
func (s *Session) Engine() *game.Engine { return s.engine }

// Run plays rounds until the operator quits or every seat is broke.
func (s *Session) Run() error {
	for {
		if s.allBroke() {
			s.console.Println("Everyone is broke. Table closed.")
			break
		}

		record, err := s.engine.PlayRound()
		if err != nil {
			return err
		}
		s.records = append(s.records, record)
		if s.writer != nil {
			if err := s.writer.Append(record); err != nil {
				s.logger.Error("failed to write round log", "error", err)
			}
		}

		again, err := s.promptPlayAgain()
		if err != nil || !again {
			break
		}
	}

	s.finish()
	return nil
}

func (s *Session) promptPlayAgain() (bool, error) {
	input, err := s.console.Prompt("Deal again? [Y/n] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Session) allBroke() bool {
	for _, seat := range s.seats {
		if seat.Player.Balance() > 0 {
			return false
		}
	}
	return true
}

// finish prints final balances and, when enabled, the session chart.
func (s *Session) finish() {
	s.console.Println()
	s.console.Println("Final balances:")
	for _, seat := range s.seats {
		s.console.Printf("  %s: $%d\n", seat.Player.Name, seat.Player.Balance())
	}

	if s.cfg.ShowChart != nil && *s.cfg.ShowChart && len(s.records) > 0 {
		s.console.Println()
		s.console.Printf("%s", stats.Render(stats.Analyze(s.records, s.cfg.StartingBalance)))
	}
	if s.writer != nil {
		s.console.Printf("Round log: %s\n", s.writer.Path())
	}
}
