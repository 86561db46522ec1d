// cli.go
//
// Command line entry point.
// Wiring order: config (.env + environment) → flag overrides → log file →
// word lists → secret → game → optional diagnostics server → raw terminal →
// input loop.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/ferdle/internal/config"
	"github.com/robalobadob/ferdle/internal/daily"
	"github.com/robalobadob/ferdle/internal/game"
	"github.com/robalobadob/ferdle/internal/httpserver"
	"github.com/robalobadob/ferdle/internal/logging"
	"github.com/robalobadob/ferdle/internal/store"
	"github.com/robalobadob/ferdle/internal/terminal"
	"github.com/robalobadob/ferdle/internal/words"
)

type options struct {
	daily     bool
	answer    string
	attempts  int
	debug     bool
	debugAddr string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "ferdle",
		Short:         "Guess the hidden word, one row at a time",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg, opts); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.daily, "daily", false, "play the word of the day")
	f.StringVar(&opts.answer, "answer", "", "fixed secret word")
	f.IntVar(&opts.attempts, "attempts", game.DefaultMaxAttempts, "number of guesses allowed")
	f.BoolVar(&opts.debug, "debug", false, "print engine state and keep scrollback (same as FERDLE_GAME_DEBUG)")
	f.StringVar(&opts.debugAddr, "debug-addr", "", "serve diagnostics on this address (same as FERDLE_DEBUG_ADDR)")
	_ = f.MarkHidden("answer")
	return cmd
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) error {
	if cmd.Flags().Changed("attempts") {
		if opts.attempts <= 0 {
			return fmt.Errorf("--attempts must be positive, got %d", opts.attempts)
		}
		cfg.MaxAttempts = opts.attempts
	}
	if opts.debug {
		cfg.DebugFlag = "1"
	}
	if opts.debugAddr != "" {
		cfg.DebugAddr = opts.debugAddr
	}
	return nil
}

func run(ctx context.Context, cfg config.Config, opts options) error {
	logFile := logging.Setup(cfg.LogFile, cfg.LogLevel)
	defer logFile.Close()

	dict, err := words.Load(words.Source{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile})
	if err != nil {
		log.Error().Err(err).Msg("failed to load word lists")
		return fmt.Errorf("load word lists: %w", err)
	}

	secret, mode, err := pickSecret(dict, cfg.DailySalt, opts, time.Now())
	if err != nil {
		return err
	}
	g, err := game.New(secret, dict, cfg.MaxAttempts)
	if err != nil {
		return err
	}
	log.Info().Str("gameId", g.ID).Str("mode", mode).Int("length", g.WordLength()).Int("attempts", g.MaxAttempts()).Msg("game started")
	log.Debug().Str("gameId", g.ID).Str("secret", g.Secret()).Msg("secret chosen")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st := store.NewMemoryStore()
	if cfg.DebugAddr != "" {
		startDiagnostics(ctx, cfg, st, dict)
	}

	restore, err := terminal.Raw(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()

	loop := &terminal.Loop{
		Game: g,
		Keys: terminal.NewKeyReader(os.Stdin),
		Render: terminal.NewRenderer(os.Stdout, terminal.Options{
			Debug: cfg.Debug(),
			Width: terminal.Width(os.Stdout),
		}),
		Store: st,
		Debug: cfg.Debug(),
	}
	_, err = loop.Run(ctx)
	return err
}

// pickSecret chooses the word for this game and names the mode it came from.
func pickSecret(dict *words.Dictionary, salt string, opts options, now time.Time) (string, string, error) {
	switch {
	case opts.answer != "":
		w := words.Normalize(opts.answer)
		if len(w) != dict.WordLength() {
			return "", "", fmt.Errorf("--answer %q: want %d letters", opts.answer, dict.WordLength())
		}
		if !dict.IsAnswer(w) {
			return "", "", fmt.Errorf("--answer %q: not in the answer list", opts.answer)
		}
		return w, "fixed", nil
	case opts.daily:
		log.Info().Str("date", daily.DateKey(now)).Msg("daily word")
		return daily.Answer(now, salt, dict.Answers()), "daily", nil
	}
	return dict.RandomAnswer(), "random", nil
}

func startDiagnostics(ctx context.Context, cfg config.Config, st store.Store, dict *words.Dictionary) {
	srv := httpserver.New(st, dict, cfg.DebugSecret)
	tok, exp, err := srv.IssueToken(24 * time.Hour)
	if err != nil {
		log.Error().Err(err).Msg("issue diagnostics token")
		return
	}
	log.Info().Str("addr", cfg.DebugAddr).Str("token", tok).Time("expires", exp).Msg("diagnostics enabled")
	go func() {
		if err := srv.Start(ctx, cfg.DebugAddr); err != nil {
			log.Error().Err(err).Msg("diagnostics server exited")
		}
	}()
}
