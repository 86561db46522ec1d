package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/ferdle/internal/config"
	"github.com/robalobadob/ferdle/internal/daily"
	"github.com/robalobadob/ferdle/internal/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New([]string{"mango", "allot", "crane"}, []string{"anger"})
	require.NoError(t, err)
	return d
}

func TestPickSecret(t *testing.T) {
	d := testDict(t)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	w, mode, err := pickSecret(d, "salt", options{answer: "[C][R][A][N][E]"}, now)
	require.NoError(t, err)
	assert.Equal(t, "crane", w)
	assert.Equal(t, "fixed", mode)

	_, _, err = pickSecret(d, "salt", options{answer: "toolong"}, now)
	require.Error(t, err)

	// an unknown or guess-only word could never be won
	_, _, err = pickSecret(d, "salt", options{answer: "zzzzz"}, now)
	require.ErrorContains(t, err, "not in the answer list")
	_, _, err = pickSecret(d, "salt", options{answer: "anger"}, now)
	require.Error(t, err)

	w, mode, err = pickSecret(d, "salt", options{daily: true}, now)
	require.NoError(t, err)
	assert.Equal(t, "daily", mode)
	assert.Equal(t, daily.Answer(now, "salt", d.Answers()), w)

	w, mode, err = pickSecret(d, "salt", options{}, now)
	require.NoError(t, err)
	assert.Equal(t, "random", mode)
	assert.True(t, d.IsAnswer(w))
}

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--attempts", "4", "--debug", "--debug-addr", "127.0.0.1:9999"}))

	cfg := config.Config{MaxAttempts: 6}
	var opts options
	opts.attempts, _ = cmd.Flags().GetInt("attempts")
	opts.debug, _ = cmd.Flags().GetBool("debug")
	opts.debugAddr, _ = cmd.Flags().GetString("debug-addr")
	require.NoError(t, applyFlags(cmd, &cfg, opts))

	assert.Equal(t, 4, cfg.MaxAttempts)
	assert.True(t, cfg.Debug())
	assert.Equal(t, "127.0.0.1:9999", cfg.DebugAddr)
}

func TestApplyFlagsKeepsEnvWhenUnset(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse(nil))
	cfg := config.Config{MaxAttempts: 8, DebugAddr: "127.0.0.1:1"}
	require.NoError(t, applyFlags(cmd, &cfg, options{attempts: 6}))
	assert.Equal(t, 8, cfg.MaxAttempts)
	assert.False(t, cfg.Debug())
	assert.Equal(t, "127.0.0.1:1", cfg.DebugAddr)
}

func TestApplyFlagsRejectsNonPositiveAttempts(t *testing.T) {
	for _, v := range []string{"0", "-2"} {
		cmd := newRootCmd()
		require.NoError(t, cmd.Flags().Parse([]string{"--attempts=" + v}))
		cfg := config.Config{MaxAttempts: 6}
		n, _ := cmd.Flags().GetInt("attempts")
		err := applyFlags(cmd, &cfg, options{attempts: n})
		require.ErrorContains(t, err, "--attempts must be positive")
		assert.Equal(t, 6, cfg.MaxAttempts)
	}
}
