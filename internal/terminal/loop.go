// internal/terminal/loop.go
//
// The sequential input loop: key → engine operation → publish → redraw.
// One goroutine owns the game for its whole life; other readers go through
// the Publisher.

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ferdle/internal/game"
)

// Publisher receives the game state after every change.
// store.Store satisfies it.
type Publisher interface {
	Save(ctx context.Context, g *game.Game) error
}

// Loop drives one game from keyboard input to a terminal outcome.
type Loop struct {
	Game   *game.Game
	Keys   *KeyReader
	Render *Renderer
	Store  Publisher // optional
	Debug  bool      // print engine state before each key
}

type keyEvent struct {
	key Key
	err error
}

// Run processes keys until the game ends, the player quits, the input is
// exhausted or ctx is cancelled. Cancellation also ends a pending read.
func (l *Loop) Run(ctx context.Context) (game.Outcome, error) {
	g := l.Game
	l.publish(ctx)
	l.Render.Draw(g.Snapshot())

	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	keys := l.readKeys(readCtx)

	for {
		if err := ctx.Err(); err != nil {
			return g.Outcome(), err
		}
		if l.Debug {
			l.Render.DebugState(g.Attempt(), len(g.Partial()), g.Secret())
		}

		var ev keyEvent
		select {
		case <-ctx.Done():
			log.Info().Str("gameId", g.ID).Msg("interrupted")
			return g.Outcome(), ctx.Err()
		case ev = <-keys:
		}
		key, err := ev.key, ev.err
		if errors.Is(err, io.EOF) {
			log.Info().Str("gameId", g.ID).Msg("input closed")
			return g.Outcome(), nil
		}
		if err != nil {
			return g.Outcome(), fmt.Errorf("read key: %w", err)
		}

		var rejected error
		switch key.Kind {
		case KeyQuit:
			log.Info().Str("gameId", g.ID).Int("attempt", g.Attempt()).Msg("player quit")
			return g.Outcome(), nil
		case KeyChar:
			g.EnterLetter(key.Rune)
		case KeyBackspace:
			g.Backspace()
		case KeyEnter:
			if _, err := g.Submit(); err != nil {
				rejected = err
			}
		default:
			continue
		}

		l.publish(ctx)
		snap := g.Snapshot()
		l.Render.Draw(snap)
		if rejected != nil {
			l.Render.Rejected(rejected)
		}
		if snap.Outcome.Finished() {
			l.Render.End(snap)
			log.Info().Str("gameId", g.ID).Str("status", string(snap.Outcome.Status)).Int("attempts", snap.Attempt).Msg("game over")
			return snap.Outcome, nil
		}
	}
}

// readKeys feeds decoded keys to the returned channel until a read fails or
// ctx is done. A read already blocked in the kernel is abandoned, not
// interrupted; the goroutine exits once it returns.
func (l *Loop) readKeys(ctx context.Context) <-chan keyEvent {
	ch := make(chan keyEvent)
	go func() {
		for {
			k, err := l.Keys.ReadKey()
			select {
			case ch <- keyEvent{key: k, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

func (l *Loop) publish(ctx context.Context) {
	if l.Store == nil {
		return
	}
	if err := l.Store.Save(ctx, l.Game); err != nil {
		log.Warn().Err(err).Str("gameId", l.Game.ID).Msg("publish snapshot")
	}
}
