// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Record: one scored guess.
//   - Status/Outcome: where the game stands.
//   - Snapshot: read-only view handed to renderers after every operation.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this exact position.
//   - "present": letter is in the secret elsewhere and not yet accounted for.
//   - "absent":  letter is not in the secret, or all its occurrences are used up.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// rank orders marks for the letter summary (higher wins).
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// Tile is one letter of a submitted guess and its mark.
type Tile struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark"`
}

// Record is a scored guess. It is never modified after Submit returns it.
type Record []Tile

// Word joins the record's letters.
func (r Record) Word() string {
	b := make([]byte, 0, len(r))
	for _, t := range r {
		b = append(b, t.Letter...)
	}
	return string(b)
}

// Status is the coarse game state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Outcome is the game's result so far. Attempt is the 1-based attempt the
// game was won on and is zero unless Status is StatusWon.
type Outcome struct {
	Status  Status `json:"status"`
	Attempt int    `json:"attempt,omitempty"`
}

// Finished reports whether the outcome is terminal.
func (o Outcome) Finished() bool { return o.Status == StatusWon || o.Status == StatusLost }

// Snapshot is a copy of the board and outcome after an operation.
type Snapshot struct {
	ID          string          `json:"id"`
	Rows        []Record        `json:"rows"`
	Partial     string          `json:"partial"`
	Attempt     int             `json:"attempt"`
	Outcome     Outcome         `json:"outcome"`
	WordLength  int             `json:"wordLength"`
	MaxAttempts int             `json:"maxAttempts"`
	Letters     map[string]Mark `json:"letters"`          // best mark seen per letter
	Secret      string          `json:"secret,omitempty"` // set once the game is finished
}

// Validator decides whether a normalized word may be submitted.
// *words.Dictionary satisfies it.
type Validator interface {
	IsValid(word string) bool
}
