// internal/words/words.go
//
// Word list management and the dictionary check used by the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply IsValid, IsAnswer, RandomAnswer and Stats on an immutable Dictionary.
//
// Word Lists:
//   - "answers": canonical solutions. All entries share one length L, which
//     becomes the game's word length.
//   - "allowed": extra valid guesses. Entries whose length differs from L are
//     dropped since they can never be typed into an L-letter row.
//
// Source selection (Load):
//   1. If AnswersFile and AllowedFile are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set, use the embedded lists from the assets package.
//
// A Dictionary is never mutated after construction, so it may be shared freely.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ferdle/assets"
)

var (
	ErrEmptyAnswers = errors.New("words: answers list is empty")
	ErrMixedLength  = errors.New("words: answers differ in length")
	ErrInvalidWord  = errors.New("words: word must be ASCII letters a-z")
)

// Source names the files a Dictionary is loaded from. Empty fields select
// the embedded defaults (see Load).
type Source struct {
	AnswersFile string
	AllowedFile string
}

// Dictionary is the immutable union of the answer and allowed lists.
type Dictionary struct {
	answers    []string            // canonical answers, load order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
	length     int                 // shared word length L
}

// New builds a Dictionary from raw lists. Entries are normalized first.
// Every answer must be alphabetic and share the length of the first answer.
func New(answers, allowed []string) (*Dictionary, error) {
	ans := make([]string, 0, len(answers))
	for _, w := range answers {
		if w = Normalize(w); w != "" {
			ans = append(ans, w)
		}
	}
	if len(ans) == 0 {
		return nil, ErrEmptyAnswers
	}

	d := &Dictionary{
		answersSet: make(map[string]struct{}, len(ans)),
		allowedSet: make(map[string]struct{}, len(ans)+len(allowed)),
		length:     len(ans[0]),
	}
	for _, w := range ans {
		if !isAlpha(w) {
			return nil, fmt.Errorf("answer %q: %w", w, ErrInvalidWord)
		}
		if len(w) != d.length {
			return nil, fmt.Errorf("answer %q has %d letters, want %d: %w", w, len(w), d.length, ErrMixedLength)
		}
		if _, dup := d.answersSet[w]; dup {
			continue
		}
		d.answersSet[w] = struct{}{}
		d.allowedSet[w] = struct{}{}
		d.answers = append(d.answers, w)
	}

	dropped := 0
	for _, w := range allowed {
		w = Normalize(w)
		if w == "" {
			continue
		}
		if len(w) != d.length || !isAlpha(w) {
			dropped++
			continue
		}
		d.allowedSet[w] = struct{}{}
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("length", d.length).Msg("skipped allowed words of another shape")
	}
	return d, nil
}

// Load reads the lists named by src, falling back to the embedded defaults.
func Load(src Source) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case src.AnswersFile == "" && src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: answers only
	case src.AnswersFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}

	default:
		return Embedded()
	}

	d, err := New(ansList, allowList)
	if err != nil {
		return nil, err
	}
	a, g := d.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Int("length", d.length).Msg("word lists loaded")
	return d, nil
}

var (
	embeddedOnce sync.Once
	embedded     *Dictionary
	embeddedErr  error
)

// Embedded returns the Dictionary built from the assets package.
// The lists are parsed once per process.
func Embedded() (*Dictionary, error) {
	embeddedOnce.Do(func() {
		ans, err := readEmbedded(assets.Answers)
		if err != nil {
			embeddedErr = err
			return
		}
		all, err := readEmbedded(assets.Allowed)
		if err != nil {
			embeddedErr = err
			return
		}
		embedded, embeddedErr = New(ans, all)
	})
	return embedded, embeddedErr
}

func readEmbedded(open func() (fs.File, error)) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded list: %w", err)
	}
	defer f.Close()
	return ReadList(f)
}

// readWordFile loads one word per line from a file on disk.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	list, err := ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// ReadList scans one word per line, lowercasing and trimming each.
// Blank lines and lines starting with '#' are skipped.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// Normalize lowercases s, strips '[' and ']' left by tile markup, and trims
// surrounding whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("[", "", "]", "").Replace(s)
	return strings.TrimSpace(s)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsValid reports whether w is an accepted guess (answers ∪ guesses).
// Matching is exact apart from letter case.
func (d *Dictionary) IsValid(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToLower(w)]
	return ok
}

// WordLength is the length L shared by every answer.
func (d *Dictionary) WordLength() int { return d.length }

// Answers returns a copy of the answer list in load order.
func (d *Dictionary) Answers() []string { return slices.Clone(d.answers) }

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[nBig.Int64()]
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}
