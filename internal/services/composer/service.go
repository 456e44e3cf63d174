package composer

import (
	"sort"

	"github.com/rs/zerolog/log"

	"anagrind/internal/domain"
	"anagrind/internal/letters"
)

const (
	// NoSentence is returned when the greedy composer accepts no words,
	// or when there are no matches to compose from.
	NoSentence = "No sentence possible."

	// NoFullMatch is returned when no combination of matched words
	// exhausts the remaining letters exactly.
	NoFullMatch = "No full-match sentence possible."

	// maxPartialWords caps the greedy sentence length.
	maxPartialWords = 3
)

// Service builds short sentences out of matched anagrams.
type Service struct{}

// New returns a composer service.
func New() *Service { return &Service{} }

// Partial greedily picks up to three words, longest first, that together
// stay within the remaining letters. It does not have to use every letter.
func (s *Service) Partial(matches []domain.Word, remaining letters.Multiset) string {
	if len(matches) == 0 {
		return NoSentence
	}
	candidates := byLengthStable(matches)

	var chosen []domain.Word
	used := letters.Multiset{}
	for _, w := range candidates {
		need := letters.FromText(w.String())
		if !fits(used, need, remaining) {
			continue
		}
		for r, n := range need {
			used[r] += n
		}
		chosen = append(chosen, w)
		if len(chosen) >= maxPartialWords {
			break
		}
	}

	if len(chosen) == 0 {
		return NoSentence
	}
	log.Debug().Int("words", len(chosen)).Msg("composed partial sentence")
	return domain.Sentence{Words: chosen}.Text()
}

// FullMatch searches for an ordered subset of the matched words whose
// letters exhaust the remaining pool exactly. The first depth-first
// success wins; each word is used at most once.
func (s *Service) FullMatch(matches []domain.Word, remaining letters.Multiset) string {
	if len(matches) == 0 {
		return NoSentence
	}
	candidates := byLengthStable(matches)

	chosen := search(candidates, 0, nil, remaining)
	if chosen == nil {
		return NoFullMatch
	}
	log.Debug().Int("words", len(chosen)).Msg("composed full-match sentence")
	return domain.Sentence{Words: chosen}.Text()
}

// search tries candidates from position from onward against the residual
// pool, recursing with a position index rather than re-slicing the list.
func search(candidates []domain.Word, from int, chosen []domain.Word, residual letters.Multiset) []domain.Word {
	if residual.Total() == 0 && len(chosen) > 0 {
		return chosen
	}
	for i := from; i < len(candidates); i++ {
		w := candidates[i]
		if !residual.Covers(w.String()) {
			continue
		}
		reduced, err := residual.Subtract(w.String())
		if err != nil {
			continue
		}
		if found := search(candidates, i+1, append(chosen, w), reduced); found != nil {
			return found
		}
	}
	return nil
}

// fits reports whether need stacked on used still stays within remaining
// for every character.
func fits(used, need, remaining letters.Multiset) bool {
	for r, n := range need {
		if used[r]+n > remaining[r] {
			return false
		}
	}
	return true
}

// byLengthStable sorts longest first, keeping the relative order of
// equal-length words as given.
func byLengthStable(words []domain.Word) []domain.Word {
	out := make([]domain.Word, len(words))
	copy(out, words)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Len() > out[j].Len() })
	return out
}

// Compile-time assertion that Service implements domain.ComposerService.
var _ domain.ComposerService = (*Service)(nil)
