package commands

import (
	"fmt"
	"io"
	"strings"

	"anagrind/internal/app"
)

// render writes the solver outcome in display order: exclusion summary,
// matched words, then the sentence when one was requested.
func render(w io.Writer, out app.Outcome, exclude []string) {
	if out.ExclusionErr != nil {
		fmt.Fprintf(w, "Error: %v\n", out.ExclusionErr)
	}
	if len(exclude) > 0 {
		fmt.Fprintf(w, "\nAfter excluding: %s\n", strings.Join(exclude, " "))
		fmt.Fprintf(w, "Remaining letters: %s\n", out.Anagrams.Remaining.Display())
	}

	if out.Anagrams.Empty() {
		fmt.Fprintln(w, "No anagrams found.")
	} else {
		fmt.Fprintf(w, "\nFound %d anagrams:\n", len(out.Anagrams.Matches))
		if len(exclude) > 0 {
			fmt.Fprintf(w, "(After excluding: %s)\n", strings.Join(exclude, " "))
		}
		for _, word := range out.Anagrams.Matches {
			fmt.Fprintln(w, word)
		}
	}

	if out.Sentence != "" {
		mode := "Partial"
		if out.FullMode {
			mode = "Full-match"
		}
		fmt.Fprintf(w, "\n%s sentence: %s\n", mode, out.Sentence)
	}
}
