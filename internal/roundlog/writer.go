// Package roundlog persists per-round records as a JSON session file.
package roundlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coder/quartz"

	"github.com/lox/blackjackforbots/internal/fileutil"
	"github.com/lox/blackjackforbots/internal/game"
)

// Writer accumulates round records and rewrites the session file after each
// append, so a crash loses at most the in-flight round. The clock is
// injected for deterministic filenames in tests.
type Writer struct {
	path    string
	records []*game.RoundRecord
}

// NewWriter creates the log directory if needed and opens a session file
// named from the current time.
func NewWriter(dir string, clock quartz.Clock) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating round log directory: %w", err)
	}
	name := fmt.Sprintf("session_%s.json", clock.Now().Format("2006-01-02_150405"))
	w := &Writer{
		path:    filepath.Join(dir, name),
		records: []*game.RoundRecord{},
	}
	// Write the empty session up front so the file exists even if the
	// first round aborts.
	if err := w.flush(); err != nil {
		return nil, err
	}
	return w, nil
}

// Path returns the session file location.
func (w *Writer) Path() string { return w.path }

// Append adds a round record and rewrites the session file.
func (w *Writer) Append(record *game.RoundRecord) error {
	w.records = append(w.records, record)
	return w.flush()
}

func (w *Writer) flush() error {
	data, err := json.MarshalIndent(w.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding round log: %w", err)
	}
	if err := fileutil.WriteFileAtomic(w.path, data, 0o644); err != nil {
		return fmt.Errorf("writing round log: %w", err)
	}
	return nil
}
