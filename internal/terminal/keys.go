// internal/terminal/keys.go
//
// Keyboard decoding for raw-mode input.
// Bytes from the terminal become Keys: letters and other printable runes,
// Backspace (DEL or ^H), Enter (CR or LF, CRLF counts once), Quit (^C, ^D).
// Escape sequences such as arrow keys are swallowed as KeyOther.

package terminal

import (
	"bufio"
	"io"
	"unicode"
)

// KeyKind classifies a decoded key.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyChar
	KeyBackspace
	KeyEnter
	KeyQuit
)

// Key is one decoded key press. Rune is set for KeyChar.
type Key struct {
	Kind KeyKind
	Rune rune
}

// KeyReader decodes keys from a byte stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key is available. It returns io.EOF when the
// input ends.
func (k *KeyReader) ReadKey() (Key, error) {
	c, _, err := k.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch c {
	case 0x03, 0x04:
		return Key{Kind: KeyQuit}, nil
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	case '\r':
		if k.r.Buffered() > 0 {
			if b, err := k.r.Peek(1); err == nil && b[0] == '\n' {
				_, _ = k.r.ReadByte()
			}
		}
		return Key{Kind: KeyEnter}, nil
	case '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x1b:
		k.skipEscape()
		return Key{Kind: KeyOther}, nil
	}
	if unicode.IsPrint(c) {
		return Key{Kind: KeyChar, Rune: c}, nil
	}
	return Key{Kind: KeyOther}, nil
}

// skipEscape consumes the rest of a CSI/SS3 sequence when it is already
// buffered. A lone ESC is left as is.
func (k *KeyReader) skipEscape() {
	if k.r.Buffered() == 0 {
		return
	}
	b, err := k.r.Peek(1)
	if err != nil || (b[0] != '[' && b[0] != 'O') {
		return
	}
	_, _ = k.r.ReadByte()
	for k.r.Buffered() > 0 {
		c, err := k.r.ReadByte()
		if err != nil || (c >= 0x40 && c <= 0x7e) {
			return
		}
	}
}
