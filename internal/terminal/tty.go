// internal/terminal/tty.go
//
// Terminal control via golang.org/x/term.
// Responsibilities:
//   - Raw: switch stdin to raw mode and hand back a restore func.
//   - Width: report the current column count for layout.
//
// Both are no-ops with safe defaults when the file is not a terminal.

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Raw switches f to raw mode when it is a terminal. The returned func
// restores the previous mode and is safe to call when nothing changed.
func Raw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, fmt.Errorf("raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// Width returns a func reporting f's current column count, 80 when unknown.
func Width(f *os.File) func() int {
	return func() int {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
		return defaultCol
	}
}
