// Package matcher implements the anagram search: every word in the list
// that the letter pool can form, filtered by minimum length and returned
// in a deterministic order.
package matcher
