package terminal

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, in string) []Key {
	t.Helper()
	kr := NewKeyReader(strings.NewReader(in))
	var out []Key
	for {
		k, err := kr.ReadKey()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, k)
	}
}

func TestReadKey(t *testing.T) {
	got := readAll(t, "aB\x7f\x08\r\n\r\n\n1\x03\x04\t")
	want := []Key{
		{Kind: KeyChar, Rune: 'a'},
		{Kind: KeyChar, Rune: 'B'},
		{Kind: KeyBackspace},
		{Kind: KeyBackspace},
		{Kind: KeyEnter},
		{Kind: KeyEnter},
		{Kind: KeyEnter},
		{Kind: KeyChar, Rune: '1'},
		{Kind: KeyQuit},
		{Kind: KeyQuit},
		{Kind: KeyOther},
	}
	assert.Equal(t, want, got)
}

func TestReadKeySkipsEscapeSequences(t *testing.T) {
	// up arrow, SS3 F1, a long CSI, then a letter
	got := readAll(t, "\x1b[A\x1bOP\x1b[1;5Cz")
	assert.Equal(t, []Key{
		{Kind: KeyOther},
		{Kind: KeyOther},
		{Kind: KeyOther},
		{Kind: KeyChar, Rune: 'z'},
	}, got)
}

func TestReadKeyLoneEscape(t *testing.T) {
	got := readAll(t, "\x1bx")
	assert.Equal(t, []Key{{Kind: KeyOther}, {Kind: KeyChar, Rune: 'x'}}, got)
}
