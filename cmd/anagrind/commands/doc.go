// Package commands defines the anagrind CLI and wires dependencies for it.
//
// Usage
//
//	anagrind LETTERS -w WORDLIST [-m N] [-e WORD ...] [-s | -f]
//
// The positional LETTERS argument is the pool to anagram. Flags select a
// word list, a minimum word length, words to exclude from the pool first,
// and an optional sentence mode (greedy partial, or exact full-match).
//
// # Implementation
//
// The root command binds its flags to environment variables (prefix
// ANAGRIND) via viper, configures logging, and builds the solver
// dependency graph before running, so the handler works against a shared
// app context.
package commands
