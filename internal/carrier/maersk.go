package carrier

import (
	"regexp"

	"github.com/danuarta/schedules-tracker/constants"
)

// MaerskProfile extracts the Maersk web layout: "VESSEL / VOYAGE" rows
// followed by full "16 Jan 2026, 19:00" timestamps. Recognition frequently
// drops the slash, so a whitespace-only rule backs up the delimiter rule.
type MaerskProfile struct{}

var maerskSignatures = []string{"maersk", "vessel/voyage", "/voyage"}

var (
	// "SPIL NISAKA / 602N" — vessel spans never cross a line break. The slash
	// anchors the voyage, so the numeric part also admits the digit lookalikes
	// recognition produces ("6O2N"); plausibleVoyage filters the rest.
	reMaerskSlash = regexp.MustCompile(`([A-Za-z][A-Za-z .\-]{2,25}?)\s*/\s*([0-9OIQDZSBGL|lo]{3,4}[A-Z]?)`)
	// "SPIL NISAKA 602N" — degraded scan with the delimiter lost
	reMaerskPlain = regexp.MustCompile(`([A-Z][A-Z .\-]{2,25}?)\s+(\d{3,4}[A-Z])\b`)
)

func (MaerskProfile) Name() constants.Carrier { return constants.Maersk }

func (MaerskProfile) Detect(text string) int {
	return countSignatures(text, maerskSignatures)
}

func (MaerskProfile) Extract(text string) []RawFieldMatch {
	rules := []matchRule{
		{name: "slash-delimited", find: findVesselVoyage(reMaerskSlash)},
		{name: "whitespace-only", find: findVesselVoyage(reMaerskPlain)},
	}

	pairs, _ := firstMatch(text, rules)
	if len(pairs) == 0 {
		return nil
	}

	// Voyage codes keyed uniquely; a repeated scan row never yields a
	// second option for the same sailing.
	seen := make(map[string]struct{}, len(pairs))
	options := pairs[:0]
	for _, p := range pairs {
		if !plausibleVessel(p.vessel) {
			continue
		}
		if _, dup := seen[p.voyage]; dup {
			continue
		}
		seen[p.voyage] = struct{}{}
		options = append(options, p)
	}

	dates := maerskDates(text)

	matches := make([]RawFieldMatch, 0, len(options))
	for i, p := range options {
		etd, eta := pairDates(dates, i)
		matches = append(matches, RawFieldMatch{
			Vessel: p.vessel,
			Voyage: p.voyage,
			ETD:    etd,
			ETA:    eta,
		})
	}
	return matches
}

// maerskDates collects date spans, preferring full year+time stamps and
// falling back to year-less ones on degraded scans.
func maerskDates(text string) []string {
	var spans []string
	for _, m := range reDateYearTime.FindAllStringSubmatch(text, -1) {
		spans = append(spans, m[1]+", "+m[2])
	}
	if len(spans) == 0 {
		for _, m := range reDateTime.FindAllStringSubmatch(text, -1) {
			spans = append(spans, m[1]+", "+m[2])
		}
	}
	if len(spans) == 0 {
		for _, m := range reDateYear.FindAllStringSubmatch(text, -1) {
			spans = append(spans, m[1])
		}
	}
	return dedupe(spans)
}

// findVesselVoyage adapts a two-group regexp into a rule body.
func findVesselVoyage(re *regexp.Regexp) func(string) []vesselVoyage {
	return func(text string) []vesselVoyage {
		var out []vesselVoyage
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			vessel := normalizeVessel(m[1])
			voyage := normalizeVoyage(m[2])
			if vessel == "" || !plausibleVoyage(voyage) {
				continue
			}
			out = append(out, vesselVoyage{vessel: vessel, voyage: voyage})
		}
		return out
	}
}
