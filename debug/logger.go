// Package debug provides opt-in developer tracing.
package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Enabled returns true if debug mode is active (HANGMAN_DEBUG=1).
func Enabled() bool {
	return os.Getenv("HANGMAN_DEBUG") == "1"
}

// Logger returns a trace logger writing to path when debug mode is active,
// and a no-op logger otherwise. The terminal belongs to the TUI, so traces
// never go to stdout or stderr. The returned closer is never nil.
func Logger(path string) (zerolog.Logger, io.Closer, error) {
	if !Enabled() {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open debug log: %w", err)
	}
	return zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger(), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
