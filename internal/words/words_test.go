package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"crane", "crane"},
		{"CRANE", "crane"},
		{"  Crane\t", "crane"},
		{"[C][R][A][N][E]", "crane"},
		{"[ ]", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestNewValidatesAnswers(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := New([]string{"", "  "}, nil)
		require.ErrorIs(t, err, ErrEmptyAnswers)
	})
	t.Run("mixed length", func(t *testing.T) {
		_, err := New([]string{"crane", "cranes"}, nil)
		require.ErrorIs(t, err, ErrMixedLength)
	})
	t.Run("non letters", func(t *testing.T) {
		_, err := New([]string{"cr4ne"}, nil)
		require.ErrorIs(t, err, ErrInvalidWord)
	})
	t.Run("length derived from answers", func(t *testing.T) {
		d, err := New([]string{"tree", "moss"}, []string{"fern", "ferns", "l1ch"})
		require.NoError(t, err)
		assert.Equal(t, 4, d.WordLength())
		assert.True(t, d.IsValid("fern"))
		assert.False(t, d.IsValid("ferns"))
		assert.False(t, d.IsValid("l1ch"))
	})
}

func TestIsValid(t *testing.T) {
	d, err := New([]string{"mango", "allot"}, []string{"anger", "lulls"})
	require.NoError(t, err)

	for _, w := range []string{"mango", "allot", "anger", "lulls", "MANGO", "Anger"} {
		assert.True(t, d.IsValid(w), w)
	}
	for _, w := range []string{"mangs", "mang", "", "angers", "zzzzz"} {
		assert.False(t, d.IsValid(w), w)
	}

	// pure: repeated calls agree
	for i := 0; i < 3; i++ {
		assert.True(t, d.IsValid("anger"))
		assert.False(t, d.IsValid("angry"))
	}

	assert.True(t, d.IsAnswer("mango"))
	assert.False(t, d.IsAnswer("anger"))
}

func TestDuplicatesCollapse(t *testing.T) {
	d, err := New([]string{"mango", "MANGO", "allot"}, []string{"mango"})
	require.NoError(t, err)
	a, g := d.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 2, g)
	assert.Equal(t, []string{"mango", "allot"}, d.Answers())
}

func TestAnswersIsACopy(t *testing.T) {
	d, err := New([]string{"mango", "allot"}, nil)
	require.NoError(t, err)
	got := d.Answers()
	got[0] = "xxxxx"
	assert.Equal(t, "mango", d.Answers()[0])
}

func TestRandomAnswerIsAnAnswer(t *testing.T) {
	d, err := New([]string{"mango", "allot", "crane"}, []string{"anger"})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.True(t, d.IsAnswer(d.RandomAnswer()))
	}
}

func TestReadList(t *testing.T) {
	in := "# header\nCrane\n\n  slate  \n#skip\nadieu\n"
	got, err := ReadList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "adieu"}, got)
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(answers, []byte("mango\nallot\n"), 0o644))
	require.NoError(t, os.WriteFile(allowed, []byte("anger\nlulls\n"), 0o644))

	t.Run("both files", func(t *testing.T) {
		d, err := Load(Source{AnswersFile: answers, AllowedFile: allowed})
		require.NoError(t, err)
		assert.True(t, d.IsAnswer("mango"))
		assert.True(t, d.IsValid("lulls"))
		assert.False(t, d.IsAnswer("lulls"))
	})
	t.Run("allowed only doubles as answers", func(t *testing.T) {
		d, err := Load(Source{AllowedFile: allowed})
		require.NoError(t, err)
		assert.True(t, d.IsAnswer("anger"))
		assert.False(t, d.IsValid("mango"))
	})
	t.Run("answers only", func(t *testing.T) {
		d, err := Load(Source{AnswersFile: answers})
		require.NoError(t, err)
		a, g := d.Stats()
		assert.Equal(t, 2, a)
		assert.Equal(t, 2, g)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Source{AnswersFile: filepath.Join(dir, "nope.txt")})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEmbeddedDefaults(t *testing.T) {
	d, err := Load(Source{})
	require.NoError(t, err)
	assert.Equal(t, 5, d.WordLength())
	assert.True(t, d.IsAnswer("crane"))
	assert.True(t, d.IsValid("slate"))
	assert.False(t, d.IsAnswer("slate"))

	again, err := Embedded()
	require.NoError(t, err)
	assert.Same(t, d, again)
}
