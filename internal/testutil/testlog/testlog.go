package testlog

import (
	"testing"

	"flashgrid/internal/logging"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Start installs the test logging profile and records the running test.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}

// Logger returns a logger that writes through t.Log so output is attached to
// the test that produced it.
func Logger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel).With().Str("test", t.Name()).Logger()
}
