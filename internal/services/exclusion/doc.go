// Package exclusion reduces a letter pool by the letters consumed by
// excluded words, degrading gracefully when a word cannot be covered.
package exclusion
