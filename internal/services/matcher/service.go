package matcher

import (
	"github.com/rs/zerolog/log"

	"anagrind/internal/domain"
	"anagrind/internal/letters"
)

// DefaultMinLength is used when the caller passes a non-positive minimum.
const DefaultMinLength = 1

// Service scans a word set for words formable from a letter pool.
type Service struct{}

// New returns a matcher service.
func New() *Service { return &Service{} }

// Match returns every word in words whose length is between minLength and
// the pool's total letter count and whose letters the pool covers. The
// result is ordered longest first, ties lexicographically, independent of
// the set's iteration order.
func (s *Service) Match(pool letters.Multiset, words domain.WordSet, minLength int) domain.AnagramResult {
	if minLength < 1 {
		minLength = DefaultMinLength
	}
	total := pool.Total()

	matches := []domain.Word{}
	for _, w := range words.Words() {
		n := w.Len()
		if n < minLength || n > total {
			continue
		}
		if pool.Covers(w.String()) {
			matches = append(matches, w)
		}
	}
	domain.SortMatches(matches)

	log.Debug().Int("candidates", words.Len()).Int("matches", len(matches)).Msg("anagram scan done")
	return domain.AnagramResult{Matches: matches, Remaining: pool}
}

// Compile-time assertion that Service implements domain.MatcherService.
var _ domain.MatcherService = (*Service)(nil)
