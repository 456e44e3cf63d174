// Package store loads the word list from disk.
//
// It contains the concrete implementation of the domain.WordStore
// interface, reading one word per line and normalising into a
// deduplicated, lowercased set.
package store
