package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"anagrind/internal/app"
	"anagrind/internal/domain"
)

const aboutText = `Anagrind
A command-line tool to find anagrams from given letters, with options to
exclude words, set a minimum word length, and generate sentences (partial
or full-match).
License: MIT`

var (
	wordlist     string
	minLength    int
	exclude      []string
	sentence     bool
	fullSentence bool
	about        bool
	verbose      bool
)

func Execute() error {
	root := &cobra.Command{
		Use:   "anagrind LETTERS",
		Short: "Find anagrams formable from a pool of letters",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if about {
				fmt.Println(aboutText)
				return nil
			}

			v := viper.New()
			v.SetEnvPrefix("anagrind")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			if len(args) == 0 || v.GetString("wordlist") == "" {
				return fmt.Errorf("%w: both LETTERS and --wordlist are required unless --about",
					domain.ErrInvalidArguments)
			}

			cfg := app.Config{
				WordListPath: v.GetString("wordlist"),
				MinLength:    v.GetInt("min-length"),
				Exclude:      exclude,
				Sentence:     sentence,
				FullSentence: fullSentence,
				Verbose:      verbose,
			}

			out, err := app.New(cfg).Solve(args[0])
			if err != nil {
				return err
			}
			render(cmd.OutOrStdout(), out, exclude)
			return nil
		},
	}

	root.Flags().StringVarP(&wordlist, "wordlist", "w", "", "path to the word list file (env ANAGRIND_WORDLIST)")
	root.Flags().IntVarP(&minLength, "min-length", "m", 1, "minimum length of words to find")
	root.Flags().StringSliceVarP(&exclude, "exclude", "e", nil, "words to subtract from the letters first")
	root.Flags().BoolVarP(&sentence, "sentence", "s", false, "generate a sentence from found anagrams (partial match)")
	root.Flags().BoolVarP(&fullSentence, "full-sentence", "f", false, "generate a sentence using all remaining letters exactly")
	root.Flags().BoolVar(&about, "about", false, "display information about this tool")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return root.Execute()
}
