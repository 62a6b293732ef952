package carrier

import (
	"regexp"
	"strings"
)

// voyageShape is the expected class for a voyage code: three or four digits
// with an optional single-letter direction suffix.
var voyageShape = regexp.MustCompile(`^\d{3,4}[A-Z]?$`)

// digit/letter confusions recognition is known to produce inside the numeric
// part of a voyage code. Spans are uppercased before lookup, so keys are the
// uppercase forms ('l' arrives here as 'L').
var digitConfusions = map[rune]rune{
	'O': '0',
	'Q': '0',
	'D': '0',
	'I': '1',
	'L': '1',
	'|': '1',
	'Z': '2',
	'S': '5',
	'B': '8',
	'G': '6',
}

// normalizeVoyage trims and uppercases a raw voyage span.
func normalizeVoyage(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// VoyageShape reports whether a span already matches the expected voyage
// code class.
func VoyageShape(code string) bool {
	return voyageShape.MatchString(code)
}

// plausibleVoyage accepts a span that already has the voyage shape, or one
// that lands in it after confusion repair. A span with no real digit at all
// is a word, not a mangled code.
func plausibleVoyage(code string) bool {
	if code == "" {
		return false
	}
	if VoyageShape(code) {
		return true
	}
	hasDigit := false
	for _, r := range code {
		if r >= '0' && r <= '9' {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return false
	}
	_, ok := CorrectVoyage(code)
	return ok
}

// CorrectVoyage conservatively repairs digit/letter confusions in a voyage
// code. A substitution is applied only when the corrected form lands in the
// expected shape class; anything ambiguous passes through unmodified rather
// than risk corrupting a valid code.
func CorrectVoyage(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || VoyageShape(code) {
		return code, false
	}

	runes := []rune(code)
	// Every position except a final letter suffix must be a digit; try the
	// confusion table on the offenders.
	last := len(runes) - 1
	changed := false
	for i, r := range runes {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == last && r >= 'A' && r <= 'Z' {
			continue // direction suffix
		}
		repl, ok := digitConfusions[r]
		if !ok {
			return code, false // not a known confusion: leave untouched
		}
		runes[i] = repl
		changed = true
	}

	corrected := string(runes)
	if changed && VoyageShape(corrected) {
		return corrected, true
	}
	return code, false
}
