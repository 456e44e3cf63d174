package domain

import "anagrind/internal/letters"

// WordStore loads the word list from its backing source.
type WordStore interface {
	Load() (WordSet, error)
}

// ExclusionService removes excluded words' letters from a pool.
type ExclusionService interface {
	// Reduce subtracts each excluded word in order. On an insufficient
	// letter it returns the pool as it stood before the failing word,
	// alongside the error.
	Reduce(pool letters.Multiset, exclude []string) (letters.Multiset, error)
}

// MatcherService finds all words formable from a letter pool.
type MatcherService interface {
	Match(pool letters.Multiset, words WordSet, minLength int) AnagramResult
}

// ComposerService builds a sentence from matched words. Both methods
// return display-ready text, falling back to a "not possible" sentinel.
type ComposerService interface {
	Partial(matches []Word, remaining letters.Multiset) string
	FullMatch(matches []Word, remaining letters.Multiset) string
}
