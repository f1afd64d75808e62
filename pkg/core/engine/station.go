package engine

import (
	"regexp"
	"strings"
)

// Station labels in coverage templates carry annotation suffixes that denote
// shift variants of the same physical station ("BAR_2", "BAR_b", "BAR:a",
// "BAR 2"). Every equality comparison in the engine goes through
// CanonicalStation so variants collapse to one key.
var (
	trailingDigitSuffix  = regexp.MustCompile(`_[0-9]+$`)
	trailingLetterSuffix = regexp.MustCompile(`_[a-z]+$`)
	trailingColonSuffix  = regexp.MustCompile(`:[a-z0-9]+$`)
	trailingSpaceSuffix  = regexp.MustCompile(` [a-z0-9]{1,2}$`)
	nonAlphanumeric      = regexp.MustCompile(`[^a-z0-9]`)
)

// CanonicalStation reduces a station label to its canonical comparison key.
// It is a pure, total function: any input maps to a key, possibly empty.
func CanonicalStation(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = trailingDigitSuffix.ReplaceAllString(key, "")
	key = trailingLetterSuffix.ReplaceAllString(key, "")
	key = trailingColonSuffix.ReplaceAllString(key, "")
	key = trailingSpaceSuffix.ReplaceAllString(key, "")
	return nonAlphanumeric.ReplaceAllString(key, "")
}

// sameStation reports whether two labels refer to the same physical station.
func sameStation(a, b string) bool {
	return CanonicalStation(a) == CanonicalStation(b)
}
