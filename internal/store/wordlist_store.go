package store

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"anagrind/internal/domain"
)

// WordListFileStore reads a word list from a plain-text file, one word
// per line.
type WordListFileStore struct {
	path string
}

// NewWordListFileStore returns a store backed by the file at path.
func NewWordListFileStore(path string) *WordListFileStore {
	return &WordListFileStore{path: path}
}

// Load reads, lowercases and dedupes the word list. A file that cannot be
// opened or read yields domain.ErrWordListUnavailable wrapped with the
// path.
func (s *WordListFileStore) Load() (domain.WordSet, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrWordListUnavailable, s.path)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrWordListUnavailable, s.path, err)
	}

	set := domain.NewWordSet(words...)
	log.Debug().Str("path", s.path).Int("words", set.Len()).Msg("word list loaded")
	return set, nil
}

// Compile-time assertion that WordListFileStore implements domain.WordStore.
var _ domain.WordStore = (*WordListFileStore)(nil)
