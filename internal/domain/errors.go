package domain

import "errors"

var (
	// ErrWordListUnavailable means the word-list source could not be read.
	// The command layer surfaces it to the user and exits non-zero.
	ErrWordListUnavailable = errors.New("word list unavailable")

	// ErrInvalidArguments means a required input (letters, word list path)
	// is missing.
	ErrInvalidArguments = errors.New("invalid arguments")
)
