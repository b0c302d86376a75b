package logging_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	// xdg caches its dirs at init, so only the shape is asserted here.
	path := logging.LogFilePath()
	assert.Equal(t, "pathtidy.log", filepath.Base(path))
	assert.Equal(t, "pathtidy", filepath.Base(filepath.Dir(path)))
}

func TestGetLoggerCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := logging.GetLogger("envstore")
	logger.Warn().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"envstore"`)
}
