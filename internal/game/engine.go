// internal/game/engine.go
//
// Game engine for a single session.
// Responsibilities:
//   - Create games around an already chosen secret (selection happens elsewhere).
//   - Edit the in-progress guess (EnterLetter, Backspace) with silent no-ops
//     when a key does not apply.
//   - Validate and apply guesses (length, dictionary).
//   - Score guesses using the two-pass algorithm.
//   - Track state transitions: playing → won/lost. Terminal states are final.
//
// Notes:
//   - A Game is driven by one input loop and is not safe for concurrent use.
//     Publish Snapshots to share state with other goroutines.
//   - randomID() is a compact hex identifier for correlating logs and the
//     diagnostics server.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ferdle/internal/words"
)

// DefaultMaxAttempts is the number of guesses allowed when none is configured.
const DefaultMaxAttempts = 6

// Rejections returned by Submit. None of them change the game.
var (
	ErrTooShort      = errors.New("not enough letters")
	ErrNotInWordList = errors.New("not in word list")
	ErrFinished      = errors.New("game finished")
)

// ErrInvalidSecret is returned by New for an empty or non-alphabetic secret.
var ErrInvalidSecret = errors.New("game: secret must be ASCII letters a-z")

// Game holds the state of a single game session.
type Game struct {
	ID string // random hex identifier

	secret      string
	dict        Validator
	length      int
	maxAttempts int

	rows    []Record
	partial []byte
	outcome Outcome
}

// New constructs a game for secret. The word length is the secret's length.
// maxAttempts <= 0 selects DefaultMaxAttempts.
func New(secret string, dict Validator, maxAttempts int) (*Game, error) {
	secret = words.Normalize(secret)
	if secret == "" {
		return nil, ErrInvalidSecret
	}
	for i := 0; i < len(secret); i++ {
		if !isLetter(secret[i]) {
			return nil, fmt.Errorf("secret %q: %w", secret, ErrInvalidSecret)
		}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		ID:          randomID(),
		secret:      secret,
		dict:        dict,
		length:      len(secret),
		maxAttempts: maxAttempts,
		rows:        make([]Record, 0, maxAttempts),
		partial:     make([]byte, 0, len(secret)),
		outcome:     Outcome{Status: StatusPlaying},
	}, nil
}

// EnterLetter appends c to the in-progress guess. It reports false and does
// nothing when the game is over, the row is full, or c is not a letter.
func (g *Game) EnterLetter(c rune) bool {
	if g.outcome.Finished() || len(g.partial) >= g.length {
		return false
	}
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return false
	}
	g.partial = append(g.partial, byte(c))
	return true
}

// Backspace removes the last letter of the in-progress guess. It reports
// false and does nothing when the game is over or the guess is empty.
func (g *Game) Backspace() bool {
	if g.outcome.Finished() || len(g.partial) == 0 {
		return false
	}
	g.partial = g.partial[:len(g.partial)-1]
	return true
}

// Submit scores the in-progress guess and appends it to the board.
//
// Rejections (the game is left exactly as it was):
//   - ErrFinished if the game already ended.
//   - ErrTooShort if fewer than WordLength letters were entered.
//   - ErrNotInWordList if the dictionary does not know the word. The
//     in-progress guess is kept so it can be edited.
//
// State transitions:
//   - guess == secret → won on this attempt.
//   - else if the board now holds MaxAttempts rows → lost.
func (g *Game) Submit() (Record, error) {
	if g.outcome.Finished() {
		return nil, ErrFinished
	}
	if len(g.partial) < g.length {
		log.Debug().Str("gameId", g.ID).Int("letters", len(g.partial)).Msg("guess rejected: too short")
		return nil, ErrTooShort
	}
	guess := words.Normalize(string(g.partial))
	if !g.dict.IsValid(guess) {
		log.Debug().Str("gameId", g.ID).Str("guess", guess).Msg("guess rejected: not in word list")
		return nil, ErrNotInWordList
	}

	marks := Evaluate(g.secret, guess)
	rec := make(Record, len(marks))
	for i, m := range marks {
		rec[i] = Tile{Letter: guess[i : i+1], Mark: m}
	}
	g.rows = append(g.rows, rec)
	g.partial = g.partial[:0]

	attempt := len(g.rows)
	switch {
	case guess == g.secret:
		g.outcome = Outcome{Status: StatusWon, Attempt: attempt}
	case attempt >= g.maxAttempts:
		g.outcome = Outcome{Status: StatusLost}
	}
	log.Info().Str("gameId", g.ID).Int("attempt", attempt).Str("status", string(g.outcome.Status)).Msg("guess accepted")
	return rec, nil
}

// Evaluate scores guess against secret with the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct and consume those secret positions.
//
// Pass 2:
//   - For each remaining guess letter, consume the leftmost unconsumed secret
//     position holding the same letter and mark Present; otherwise Absent.
//
// A letter occurring k times in the secret is therefore marked Correct or
// Present at most k times, and exact matches are never displaced.
// Evaluate returns nil when the lengths differ.
func Evaluate(secret, guess string) []Mark {
	n := len(secret)
	if len(guess) != n {
		return nil
	}
	res := make([]Mark, n)
	if guess == secret {
		for i := range res {
			res[i] = MarkCorrect
		}
		return res
	}

	consumed := make([]bool, n)

	// First pass: exact positions.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkCorrect
			consumed[i] = true
		}
	}

	// Second pass: presence among unconsumed secret letters.
	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		res[i] = MarkAbsent
		for j := 0; j < n; j++ {
			if !consumed[j] && secret[j] == guess[i] {
				res[i] = MarkPresent
				consumed[j] = true
				break
			}
		}
	}
	return res
}

// Snapshot copies the board and outcome. Records are shared since they are
// immutable.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:          g.ID,
		Rows:        append([]Record(nil), g.rows...),
		Partial:     string(g.partial),
		Attempt:     len(g.rows),
		Outcome:     g.outcome,
		WordLength:  g.length,
		MaxAttempts: g.maxAttempts,
		Letters:     make(map[string]Mark),
	}
	for _, row := range g.rows {
		for _, t := range row {
			if t.Mark.rank() > s.Letters[t.Letter].rank() {
				s.Letters[t.Letter] = t.Mark
			}
		}
	}
	if g.outcome.Finished() {
		s.Secret = g.secret
	}
	return s
}

// Secret returns the word being guessed. Exposed for debug output.
func (g *Game) Secret() string { return g.secret }

// Attempt is the number of accepted guesses so far.
func (g *Game) Attempt() int { return len(g.rows) }

// Partial is the in-progress guess.
func (g *Game) Partial() string { return string(g.partial) }

// Outcome reports the current outcome.
func (g *Game) Outcome() Outcome { return g.outcome }

// WordLength is the number of letters per guess.
func (g *Game) WordLength() int { return g.length }

// MaxAttempts is the number of guesses allowed.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// isLetter reports whether b is a lowercase ASCII letter.
func isLetter(b byte) bool { return b >= 'a' && b <= 'z' }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
