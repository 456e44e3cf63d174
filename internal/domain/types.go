package domain

import (
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"anagrind/internal/letters"
)

// Word is a lowercase token from the word list.
type Word string

// String returns the string form of the word.
func (w Word) String() string { return string(w) }

// Len returns the word's length in runes.
func (w Word) Len() int { return len([]rune(string(w))) }

// WordSet is a deduplicated collection of words, read-only after load.
type WordSet map[Word]struct{}

// NewWordSet lowercases, trims and dedupes the given tokens. Empty tokens
// are dropped.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[Word(w)] = struct{}{}
	}
	return set
}

// Contains reports whether w is in the set.
func (s WordSet) Contains(w Word) bool {
	_, ok := s[w]
	return ok
}

// Words returns the set's members in unspecified order.
func (s WordSet) Words() []Word { return lo.Keys(s) }

// Len returns the number of distinct words.
func (s WordSet) Len() int { return len(s) }

// AnagramResult pairs the matched words with the letter pool that produced
// them. Matches are ordered longest first, ties broken lexicographically.
type AnagramResult struct {
	Matches   []Word
	Remaining letters.Multiset
}

// Empty reports whether no words matched.
func (r AnagramResult) Empty() bool { return len(r.Matches) == 0 }

// Sentence is an ordered choice of words plus its derived display text.
type Sentence struct {
	Words []Word
}

// Text renders the sentence: first word capitalized, single spaces,
// trailing period. An empty sentence renders as "".
func (s Sentence) Text() string {
	if len(s.Words) == 0 {
		return ""
	}
	parts := lo.Map(s.Words, func(w Word, _ int) string { return string(w) })
	parts[0] = capitalize(parts[0])
	return strings.Join(parts, " ") + "."
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// SortMatches orders words longest first, equal lengths lexicographically.
// The sort is deterministic regardless of input order.
func SortMatches(words []Word) {
	sort.Slice(words, func(i, j int) bool {
		if li, lj := words[i].Len(), words[j].Len(); li != lj {
			return li > lj
		}
		return words[i] < words[j]
	})
}
