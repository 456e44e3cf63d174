package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anagrind/internal/domain"
)

func TestNewWordSet(t *testing.T) {
	set := domain.NewWordSet("Cat", "cat", " dog ", "", "bird")

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("cat"))
	assert.True(t, set.Contains("dog"))
	assert.False(t, set.Contains("Cat"))
}

func TestSentenceText(t *testing.T) {
	tests := []struct {
		name  string
		words []domain.Word
		want  string
	}{
		{"one word", []domain.Word{"ox"}, "Ox."},
		{"two words", []domain.Word{"eat", "tea"}, "Eat tea."},
		{"three words", []domain.Word{"rats", "star", "at"}, "Rats star at."},
		{"empty", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.Sentence{Words: tc.words}.Text())
		})
	}
}

func TestSortMatches(t *testing.T) {
	words := []domain.Word{"tin", "silent", "lens", "enlist"}

	domain.SortMatches(words)

	assert.Equal(t, []domain.Word{"enlist", "silent", "lens", "tin"}, words)
}
