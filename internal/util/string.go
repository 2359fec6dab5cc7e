package util

import "strings"

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// ClampString cuts a string to maxRunes characters without an ellipsis.
// Used to bound raw form input before it reaches validation.
func ClampString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// RuneLength returns the character count of the trimmed string.
// Korean input is multi-byte, so len(s) would overcount.
func RuneLength(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}
