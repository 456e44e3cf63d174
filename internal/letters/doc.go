// Package letters implements the letter multiset that backs the anagram
// search: a count of available characters supporting subtraction and
// containment checks.
package letters
