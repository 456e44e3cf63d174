// Package composer turns matched anagrams into a short sentence, either
// greedily (up to three words within the remaining letters) or exhaustively
// (a backtracking search that must consume every remaining letter).
package composer
