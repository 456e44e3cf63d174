package exclusion

import (
	"github.com/rs/zerolog/log"

	"anagrind/internal/domain"
	"anagrind/internal/letters"
)

// Service applies excluded words to a letter pool before the anagram
// search runs.
type Service struct{}

// New returns an exclusion service.
func New() *Service { return &Service{} }

// Reduce subtracts each excluded word from pool in the order given. If a
// word needs more of a letter than remains, processing stops and the pool
// as it stood before that word is returned with the error; callers treat
// this as a degraded empty result, not a failure of the whole run.
func (s *Service) Reduce(pool letters.Multiset, exclude []string) (letters.Multiset, error) {
	current := pool
	for _, word := range exclude {
		reduced, err := current.Subtract(word)
		if err != nil {
			return current, err
		}
		log.Debug().Str("word", word).Str("remaining", reduced.Display()).Msg("excluded word")
		current = reduced
	}
	return current, nil
}

// Compile-time assertion that Service implements domain.ExclusionService.
var _ domain.ExclusionService = (*Service)(nil)
