// internal/terminal/render.go
//
// Board rendering.
// Layout, top to bottom: title, one row per attempt, a keyboard hint and an
// optional message line. Everything is indented by a gap of width/12 spaces.
//
// Tiles:
//   - "[A]" green   → correct
//   - "[A]" yellow  → present
//   - "[A]"         → absent, or a letter of the in-progress guess
//   - "[ ]"         → empty
//
// Lines end in CRLF so output stays aligned while the terminal is in raw mode.

package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/ferdle/internal/game"
)

const (
	title      = "FERDLE"
	clearHome  = "\x1b[2J\x1b[1;1H"
	eol        = "\r\n"
	emptyTile  = "[ ]"
	defaultCol = 80
)

var winMessages = []string{
	"Genius",
	"Magnificent",
	"Impressive",
	"Splendid",
	"Great",
	"Phew",
}

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// WinMessage returns the praise for a win on the given 1-based attempt.
// Attempts past the list reuse its last entry.
func WinMessage(attempt int) string {
	switch {
	case attempt < 1:
		return winMessages[0]
	case attempt > len(winMessages):
		return winMessages[len(winMessages)-1]
	}
	return winMessages[attempt-1]
}

// Options configure a Renderer.
type Options struct {
	Debug bool       // keep scrollback (no screen clear)
	Plain bool       // no ANSI colours
	Width func() int // terminal columns; nil means 80
}

// Renderer draws snapshots to a writer.
type Renderer struct {
	out   io.Writer
	debug bool
	width func() int

	heading *color.Color
	correct *color.Color
	present *color.Color
	absent  *color.Color
	bad     *color.Color
	note    *color.Color
	win     *color.Color
	word    *color.Color
}

// NewRenderer returns a Renderer writing to out.
func NewRenderer(out io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:     out,
		debug:   opts.Debug,
		width:   opts.Width,
		heading: color.New(color.Underline, color.Bold),
		correct: color.New(color.FgGreen),
		present: color.New(color.FgYellow),
		absent:  color.New(color.Faint),
		bad:     color.New(color.FgRed, color.Bold),
		note:    color.New(color.FgWhite, color.Bold),
		win:     color.New(color.FgGreen, color.Bold),
		word:    color.New(color.Underline, color.Bold),
	}
	if r.width == nil {
		r.width = func() int { return defaultCol }
	}
	if opts.Plain {
		for _, c := range []*color.Color{r.heading, r.correct, r.present, r.absent, r.bad, r.note, r.win, r.word} {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) gap() string {
	w := r.width()
	if w < 0 {
		w = 0
	}
	return strings.Repeat(" ", w/12)
}

func (r *Renderer) line(s string) {
	gap := r.gap()
	fmt.Fprint(r.out, gap, s, gap, eol)
}

// Draw renders the whole board.
func (r *Renderer) Draw(s game.Snapshot) {
	if !r.debug {
		fmt.Fprint(r.out, clearHome)
	}
	gap := r.gap()
	fmt.Fprint(r.out, gap, r.heading.Sprint(title), gap, gap, eol, eol)

	for i := 0; i < s.MaxAttempts; i++ {
		var b strings.Builder
		switch {
		case i < len(s.Rows):
			for _, t := range s.Rows[i] {
				b.WriteString(r.tile(t.Letter, t.Mark))
			}
		case i == len(s.Rows) && !s.Outcome.Finished():
			for j := 0; j < s.WordLength; j++ {
				if j < len(s.Partial) {
					b.WriteString(tileText(s.Partial[j : j+1]))
				} else {
					b.WriteString(emptyTile)
				}
			}
		default:
			b.WriteString(strings.Repeat(emptyTile, s.WordLength))
		}
		r.line(b.String())
	}
	fmt.Fprint(r.out, eol)

	for _, row := range keyboardRows {
		var b strings.Builder
		for i, c := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			letter := string(c)
			b.WriteString(r.key(letter, s.Letters[letter]))
		}
		r.line(b.String())
	}
	fmt.Fprint(r.out, eol)
}

func tileText(letter string) string { return "[" + strings.ToUpper(letter) + "]" }

func (r *Renderer) tile(letter string, m game.Mark) string {
	switch m {
	case game.MarkCorrect:
		return r.correct.Sprint(tileText(letter))
	case game.MarkPresent:
		return r.present.Sprint(tileText(letter))
	}
	return tileText(letter)
}

func (r *Renderer) key(letter string, m game.Mark) string {
	up := strings.ToUpper(letter)
	switch m {
	case game.MarkCorrect:
		return r.correct.Sprint(up)
	case game.MarkPresent:
		return r.present.Sprint(up)
	case game.MarkAbsent:
		return r.absent.Sprint(up)
	}
	return up
}

// Rejected prints the message for a Submit rejection.
func (r *Renderer) Rejected(err error) {
	switch {
	case errors.Is(err, game.ErrTooShort):
		r.line(r.note.Sprint("Not enough letters."))
	case errors.Is(err, game.ErrNotInWordList):
		r.line(r.bad.Sprint("Not in word list."))
	}
}

// End prints the result of a finished game.
func (r *Renderer) End(s game.Snapshot) {
	switch s.Outcome.Status {
	case game.StatusWon:
		r.line(r.win.Sprint(WinMessage(s.Outcome.Attempt)))
	case game.StatusLost:
		r.line(r.bad.Sprint("Game over!"))
	default:
		return
	}
	r.line("The word was " + r.word.Sprint(s.Secret) + ".")
}

// DebugState prints the engine's counters and secret.
func (r *Renderer) DebugState(attempt, col int, secret string) {
	fmt.Fprintf(r.out, "rows=%d col=%d word=%s%s", attempt, col, secret, eol)
}
