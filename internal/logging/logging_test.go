package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWritesJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	var buf bytes.Buffer
	To(&buf, "info")

	log.Info().Str("gameId", "abc").Msg("guess accepted")
	log.Debug().Msg("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "guess accepted", rec["message"])
	assert.Equal(t, "abc", rec["gameId"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetupWritesFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	path := filepath.Join(t.TempDir(), "ferdle.log")
	closer := Setup(path, "debug")
	log.Debug().Msg("to file")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}
