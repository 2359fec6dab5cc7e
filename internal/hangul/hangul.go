// Package hangul provides predicates over the precomposed Hangul syllable
// block (U+AC00–U+D7A3). Jamo-only input (ㄱ, ㅏ, ...) does not count as a
// syllable and is rejected.
package hangul

import "strings"

const (
	syllableBase = '가'
	syllableLast = '힣'
)

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}

// ContainsSyllable reports whether s contains at least one Hangul syllable.
// Empty and whitespace-only strings never qualify.
func ContainsSyllable(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if IsSyllable(r) {
			return true
		}
	}
	return false
}

// Syllables returns the Hangul syllables of word in order, skipping any
// non-Hangul runes. Used to preview the bracketed line openers ([바], [다]).
func Syllables(word string) []string {
	var out []string
	for _, r := range strings.TrimSpace(word) {
		if IsSyllable(r) {
			out = append(out, string(r))
		}
	}
	return out
}
