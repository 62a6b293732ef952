package carrier

import (
	"regexp"
	"strings"

	"github.com/danuarta/schedules-tracker/constants"
)

// RawFieldMatch is the transient record of one matched option: a vessel-name
// span, a voyage-code span, and the raw date/time spans in order of
// appearance (ETD first). It exists only during a single extraction pass.
type RawFieldMatch struct {
	Vessel string
	Voyage string
	ETD    string
	ETA    string
}

// Profile is the closed capability interface one shipping line implements.
// Carriers are added by adding a variant, never by branching on string
// identity inside the engine.
type Profile interface {
	// Name returns the carrier identity this profile extracts for.
	Name() constants.Carrier

	// Detect scores how strongly the text matches this profile's layout:
	// the number of signature tokens present. Zero means "not mine".
	Detect(text string) int

	// Extract runs the profile's ordered rule chain over the raw text and
	// returns zero or more raw field tuples. Zero matches is a valid
	// outcome, not an error.
	Extract(text string) []RawFieldMatch
}

// matchRule is one structural pattern for locating vessel/voyage pairs.
// Profiles compose rules by first-success selection: the first rule that
// yields a structurally plausible match wins and later rules are skipped.
type matchRule struct {
	name string
	find func(text string) []vesselVoyage
}

type vesselVoyage struct {
	vessel string
	voyage string
}

// firstMatch runs rules in order and returns the first non-empty result
// along with the rule name that produced it.
func firstMatch(text string, rules []matchRule) ([]vesselVoyage, string) {
	for _, r := range rules {
		if found := r.find(text); len(found) > 0 {
			return found, r.name
		}
	}
	return nil, ""
}

// skipTokens are boilerplate spans that recognition regularly serves up where
// a vessel name is expected: column headers, cut-off labels, carrier names.
var skipTokens = map[string]struct{}{
	"VESSEL":        {},
	"VOYAGE":        {},
	"VESSEL VOYAGE": {},
	"VOYAGE REF":    {},
	"SERVICE":       {},
	"TERMINAL":      {},
	"ETD":           {},
	"ETA":           {},
	"CY CUT OFF":    {},
	"CY CUTOFF":     {},
	"LADEN PICKUP":  {},
	"DEPARTURE":     {},
	"ARRIVAL":       {},
	"MAERSK":        {},
	"OOCL":          {},
	"CMA CGM":       {},
	"CNC":           {},
	"MSC":           {},
	"EVERGREEN":     {},
	"HAPAG LLOYD":   {},
	"OCEAN NETWORK": {},
}

var (
	reLetterDigit = regexp.MustCompile(`([A-Za-z])(\d)`)
	reSpaces      = regexp.MustCompile(`\s+`)
	rePunct       = regexp.MustCompile(`[.\-]`)
)

// normalizeVessel cleans a raw vessel span: splits glued letter/digit runs
// ("DANUM175" -> "DANUM 175"), collapses whitespace, uppercases. Catalog
// correction (SPILNISAKA -> SPIL NISAKA) is the resolver's job, not ours.
func normalizeVessel(name string) string {
	name = strings.TrimSpace(name)
	name = reLetterDigit.ReplaceAllString(name, "$1 $2")
	name = reSpaces.ReplaceAllString(name, " ")
	return strings.ToUpper(strings.TrimSpace(name))
}

// isSkipToken reports whether the normalized candidate is boilerplate rather
// than a vessel name.
func isSkipToken(candidate string) bool {
	key := rePunct.ReplaceAllString(strings.ToUpper(candidate), " ")
	key = strings.TrimSpace(reSpaces.ReplaceAllString(key, " "))
	_, ok := skipTokens[key]
	return ok
}

// plausibleVessel applies the structural floor for a vessel span.
func plausibleVessel(candidate string) bool {
	return len(candidate) >= 3 && !isSkipToken(candidate)
}

// countSignatures scores text against lowercase signature substrings.
func countSignatures(text string, signatures []string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, sig := range signatures {
		if strings.Contains(lower, sig) {
			score++
		}
	}
	return score
}

const monthGroup = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// Shared date span patterns. Spans keep their raw text (including any
// weekday annotation) so the normalizer can report exactly what it saw.
var (
	// "16 Jan 2026, 19:00"
	reDateYearTime = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:` + monthGroup + `)[a-z]*\s+\d{4})[,\s]+(\d{1,2}:\d{2})`)
	// "7 Jan 23:00" (no year; year is inferred downstream)
	reDateTime = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:` + monthGroup + `)[a-z]*)[,\s]+(\d{1,2}:\d{2})`)
	// "Sunday, 11-Jan-2026" (weekday kept in the span)
	reWeekdayDate = regexp.MustCompile(`(?i)((?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)[,\s]+\d{1,2}-(?:` + monthGroup + `)-\d{4})`)
	// "16 Jan 2026"
	reDateYear = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:` + monthGroup + `)[a-z]*\s+\d{4})`)
)

// dedupe keeps first occurrences, preserving order of appearance.
func dedupe(spans []string) []string {
	seen := make(map[string]struct{}, len(spans))
	out := spans[:0]
	for _, s := range spans {
		key := strings.ToUpper(strings.TrimSpace(s))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// pairDates walks date spans two at a time, yielding (ETD, ETA) per option.
func pairDates(spans []string, i int) (etd, eta string) {
	etdIdx, etaIdx := i*2, i*2+1
	if etdIdx < len(spans) {
		etd = spans[etdIdx]
	}
	if etaIdx < len(spans) {
		eta = spans[etaIdx]
	}
	return etd, eta
}
