// Package stats analyzes session round logs.
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/lox/blackjackforbots/internal/game"
)

// PlayerStats tracks one participant's results across a session
type PlayerStats struct {
	Name    string
	Rounds  int
	Sum     float64 // sum of per-round nets
	Sum2    float64 // sum of squares for variance calculation
	Values  []float64
	Banked  []float64 // balance after each round, for charting
	Results map[game.Result]int
	Wagered int
	Final   int
}

// Add incorporates one round's outcome into the statistics.
func (p *PlayerStats) Add(net float64, balance int, bet int, result game.Result) {
	p.Rounds++
	p.Sum += net
	p.Sum2 += net * net
	p.Values = append(p.Values, net)
	p.Banked = append(p.Banked, float64(balance))
	p.Wagered += bet
	p.Final = balance
	if result != game.ResultNone {
		p.Results[result]++
	}
}

// Mean returns the arithmetic mean net result per round
func (p *PlayerStats) Mean() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return p.Sum / float64(p.Rounds)
}

// Variance returns the sample variance of per-round nets
func (p *PlayerStats) Variance() float64 {
	if p.Rounds < 2 {
		return 0
	}
	mean := p.Mean()
	return (p.Sum2 - float64(p.Rounds)*mean*mean) / float64(p.Rounds-1)
}

// StdDev returns the sample standard deviation of per-round nets
func (p *PlayerStats) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// Median returns the median per-round net
func (p *PlayerStats) Median() float64 {
	if len(p.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(p.Values))
	copy(sorted, p.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Session aggregates a full session's round log by participant.
type Session struct {
	Rounds  int
	Players []*PlayerStats
}

// Load reads a session round log from disk.
func Load(path string) ([]*game.RoundRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading round log: %w", err)
	}
	var records []*game.RoundRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding round log %s: %w", path, err)
	}
	return records, nil
}

// Analyze folds round records into per-player statistics. The starting
// balance anchors the first round's net; balances in the log are
// post-settlement.
func Analyze(records []*game.RoundRecord, startingBalance int) *Session {
	session := &Session{Rounds: len(records)}
	byName := map[string]*PlayerStats{}
	prev := map[string]int{}

	for _, record := range records {
		for _, pr := range record.Players {
			ps, ok := byName[pr.Name]
			if !ok {
				ps = &PlayerStats{
					Name:    pr.Name,
					Results: map[game.Result]int{},
				}
				byName[pr.Name] = ps
				prev[pr.Name] = startingBalance
				session.Players = append(session.Players, ps)
			}
			ps.Add(float64(pr.Balance-prev[pr.Name]), pr.Balance, pr.Bet, pr.Result)
			prev[pr.Name] = pr.Balance
		}
	}
	return session
}
