package app

import (
	"anagrind/internal/domain"
	"anagrind/internal/letters"
)

// App runs the solver pipeline: reduce the letter pool by exclusions,
// match the word list against it, optionally compose a sentence.
type App struct {
	wire *Wire
	cfg  Config
}

// New builds an App from cfg.
func New(cfg Config) *App {
	return &App{wire: NewWire(cfg), cfg: cfg}
}

// Outcome is the result of one solver run, ready for display.
type Outcome struct {
	// Anagrams holds the matched words and the (possibly reduced) pool.
	Anagrams domain.AnagramResult

	// ExclusionErr is set when an excluded word could not be covered;
	// Anagrams is then empty and its pool reflects the state before the
	// failing word.
	ExclusionErr error

	// Sentence is the composed text, or empty when no sentence mode was
	// requested. FullMode records which composer produced it.
	Sentence string
	FullMode bool
}

// Solve runs the pipeline over the raw letter input. The only error is a
// word list that cannot be loaded; exclusion failures degrade into an
// empty result instead.
func (a *App) Solve(rawLetters string) (Outcome, error) {
	words, err := a.wire.Words.Load()
	if err != nil {
		return Outcome{}, err
	}

	pool := letters.FromText(rawLetters)

	var out Outcome
	reduced, exclErr := a.wire.Exclusions.Reduce(pool, a.cfg.Exclude)
	if exclErr != nil {
		out.ExclusionErr = exclErr
		out.Anagrams = domain.AnagramResult{Remaining: reduced}
	} else {
		out.Anagrams = a.wire.Matcher.Match(reduced, words, a.cfg.MinLength)
	}

	switch {
	case a.cfg.FullSentence:
		out.FullMode = true
		out.Sentence = a.wire.Composer.FullMatch(out.Anagrams.Matches, out.Anagrams.Remaining)
	case a.cfg.Sentence:
		out.Sentence = a.wire.Composer.Partial(out.Anagrams.Matches, out.Anagrams.Remaining)
	}
	return out, nil
}
