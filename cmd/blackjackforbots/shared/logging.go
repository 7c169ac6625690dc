package shared

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures structured console logging
func SetupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// SetupQuietLogger keeps gameplay output clean: warnings only, unless debug
// logging is requested.
func SetupQuietLogger(debug bool) *log.Logger {
	if debug {
		return SetupLogger(true)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})
}
