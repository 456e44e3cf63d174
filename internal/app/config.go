package app

// Config holds runtime options for building the app, assembled by the
// command layer from flags and environment.
type Config struct {
	WordListPath string   // path to the word list file
	MinLength    int      // minimum matched word length, default 1
	Exclude      []string // words removed from the pool before matching
	Sentence     bool     // compose a greedy partial sentence
	FullSentence bool     // compose an exact full-match sentence; wins over Sentence
	Verbose      bool     // debug logging
}
