package letters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anagrind/internal/letters"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want letters.Multiset
	}{
		{"lowercases and counts", "Listen", letters.Multiset{'l': 1, 'i': 1, 's': 1, 't': 1, 'e': 1, 'n': 1}},
		{"skips whitespace", "eat tea", letters.Multiset{'e': 2, 'a': 2, 't': 2}},
		{"keeps non-letters", "a-1", letters.Multiset{'a': 1, '-': 1, '1': 1}},
		{"empty input", "  \t ", letters.Multiset{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, letters.FromText(tc.text))
		})
	}
}

func TestSubtract(t *testing.T) {
	base := letters.FromText("cat")

	got, err := base.Subtract("at")
	require.NoError(t, err)
	assert.Equal(t, letters.Multiset{'c': 1}, got)

	// The receiver is untouched.
	assert.Equal(t, letters.FromText("cat"), base)
}

func TestSubtractReducesTotalByWordLength(t *testing.T) {
	base := letters.FromText("enlistment")

	got, err := base.Subtract("tin")
	require.NoError(t, err)
	assert.Equal(t, base.Total()-3, got.Total())
}

func TestSubtractInsufficient(t *testing.T) {
	base := letters.FromText("cat")

	got, err := base.Subtract("dog")
	assert.Nil(t, got)

	var insuf *letters.InsufficientError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, "dog", insuf.Word)
	assert.Contains(t, "dog", string(insuf.Char))
}

func TestSubtractCountDeficit(t *testing.T) {
	base := letters.FromText("cat")

	_, err := base.Subtract("tt")
	var insuf *letters.InsufficientError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 't', insuf.Char)
}

func TestCovers(t *testing.T) {
	m := letters.FromText("listen")

	assert.True(t, m.Covers("silent"))
	assert.True(t, m.Covers("tin"))
	assert.True(t, m.Covers("SILENT"))
	assert.False(t, m.Covers("lessen"))
	assert.False(t, m.Covers("banana"))
	assert.True(t, m.Covers(""))
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"singles", "cat", "act"},
		{"counts above one", "eat tea", "a(2)e(2)t(2)"},
		{"mixed", "boot", "bo(2)t"},
		{"empty", "", "none"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, letters.FromText(tc.text).Display())
		})
	}
}
