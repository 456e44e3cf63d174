package letters

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Multiset counts available characters. Entries never hold a zero or
// negative count; a character that runs out is removed from the map.
type Multiset map[rune]int

// InsufficientError reports a subtraction that needed more of a character
// than the multiset held.
type InsufficientError struct {
	Word string
	Char rune
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("word %q uses more %q than available", e.Word, string(e.Char))
}

// FromText builds a multiset from raw input, lowercasing and skipping
// whitespace. Non-letter characters are counted as-is.
func FromText(text string) Multiset {
	m := Multiset{}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		m[unicode.ToLower(r)]++
	}
	return m
}

// Clone returns an independent copy of m.
func (m Multiset) Clone() Multiset {
	out := make(Multiset, len(m))
	for r, n := range m {
		out[r] = n
	}
	return out
}

// Subtract removes word's letters from a copy of m and returns it. The
// receiver is never mutated; on an InsufficientError the copy is discarded.
func (m Multiset) Subtract(word string) (Multiset, error) {
	out := m.Clone()
	for r, n := range FromText(word) {
		have, ok := out[r]
		if !ok || have < n {
			return nil, &InsufficientError{Word: word, Char: r}
		}
		if have == n {
			delete(out, r)
		} else {
			out[r] = have - n
		}
	}
	return out, nil
}

// Covers reports whether word can be formed from m without exceeding any
// count. It does not mutate m.
func (m Multiset) Covers(word string) bool {
	for r, n := range FromText(word) {
		if m[r] < n {
			return false
		}
	}
	return true
}

// Total returns the number of characters in the multiset, counted with
// multiplicity.
func (m Multiset) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Display renders the multiset for the user: each character in sorted
// order, bare when its count is 1, otherwise as "c(n)". An empty multiset
// renders as "none".
func (m Multiset) Display() string {
	if len(m) == 0 {
		return "none"
	}
	chars := lo.Keys(m)
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	var b strings.Builder
	for _, r := range chars {
		if n := m[r]; n > 1 {
			fmt.Fprintf(&b, "%c(%d)", r, n)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
