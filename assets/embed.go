// assets/embed.go
//
// Embedded default word lists. Used when no WORDS_*_FILE variables are set.
//
// Format: one word per line; blank lines and lines starting with '#' are
// skipped by the words package.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Answers opens the embedded answer list.
func Answers() (fs.File, error) {
	return FS.Open("answers.txt")
}

// Allowed opens the embedded list of extra accepted guesses.
func Allowed() (fs.File, error) {
	return FS.Open("allowed.txt")
}
