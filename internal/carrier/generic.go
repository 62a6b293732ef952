package carrier

import (
	"regexp"

	"github.com/danuarta/schedules-tracker/constants"
)

// GenericProfile is the fallback for layouts no registered carrier claims.
// It chains the structural patterns that show up across carriers, most
// specific first.
type GenericProfile struct{}

var (
	reGenericLabeled = regexp.MustCompile(`(?i)Vessel[\s:]+([A-Z][A-Z0-9 .\-]{2,25})`)
	reGenericMV      = regexp.MustCompile(`(?i)M/V\s+([A-Z][A-Z0-9 .\-]{2,30})`)
	// "11-Jan-2026" without a weekday
	reDashDate = regexp.MustCompile(`(?i)(\d{1,2}-(?:` + monthGroup + `)-\d{4})`)
)

func (GenericProfile) Name() constants.Carrier { return constants.Generic }

// Detect always reports zero: generic never claims a block during
// auto-detection, it is chosen only when detection comes up undetermined.
func (GenericProfile) Detect(string) int { return 0 }

func (GenericProfile) Extract(text string) []RawFieldMatch {
	rules := []matchRule{
		{name: "slash-delimited", find: findVesselVoyage(reMaerskSlash)},
		{name: "vessel-label", find: findLabeledVessel(reGenericLabeled)},
		{name: "mv-prefix", find: findLabeledVessel(reGenericMV)},
	}

	pairs, _ := firstMatch(text, rules)
	if len(pairs) == 0 {
		return nil
	}

	dates := genericDates(text)

	seen := make(map[string]struct{}, len(pairs))
	matches := make([]RawFieldMatch, 0, len(pairs))
	for i, p := range pairs {
		if !plausibleVessel(p.vessel) {
			continue
		}
		etd, eta := pairDates(dates, i)
		if etd == "" {
			continue
		}
		key := p.vessel + "|" + etd
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matches = append(matches, RawFieldMatch{
			Vessel: p.vessel,
			Voyage: p.voyage,
			ETD:    etd,
			ETA:    eta,
		})
	}
	return matches
}

// genericDates tries date shapes most-informative first, taking the first
// shape that matches anything.
func genericDates(text string) []string {
	var spans []string
	for _, m := range reDateYearTime.FindAllStringSubmatch(text, -1) {
		spans = append(spans, m[1]+", "+m[2])
	}
	if len(spans) == 0 {
		for _, m := range reDateYear.FindAllStringSubmatch(text, -1) {
			spans = append(spans, m[1])
		}
	}
	if len(spans) == 0 {
		for _, m := range reDashDate.FindAllStringSubmatch(text, -1) {
			spans = append(spans, m[1])
		}
	}
	return dedupe(spans)
}
