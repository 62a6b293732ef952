package carrier

import (
	"regexp"

	"github.com/danuarta/schedules-tracker/constants"
)

// CMAProfile extracts the CMA-CGM / CNC portal layout: "Vessel NAME" rows
// with weekday-annotated dates ("Sunday, 11-Jan-2026"). The layout carries
// no voyage code, so options ship with a "-" placeholder the way operators
// expect to see it.
type CMAProfile struct{}

var cmaSignatures = []string{"cma", "cnc", "vessel"}

var (
	// "Vessel DANUM 175 CO2..." — the CO2 footprint column trails the name
	reCMAVessel = regexp.MustCompile(`(?im)Vessel\s+([A-Z][A-Z0-9\s]{2,20}?)(?:\s+CO2|\s*$)`)
)

func (CMAProfile) Name() constants.Carrier { return constants.CMACGM }

func (CMAProfile) Detect(text string) int {
	score := countSignatures(text, cmaSignatures)
	// The weekday-date signature is the strongest hint this is the CMA
	// portal and not some other "Vessel ..." table.
	if reWeekdayDate.MatchString(text) {
		score++
	}
	return score
}

func (CMAProfile) Extract(text string) []RawFieldMatch {
	rules := []matchRule{
		{name: "vessel-label", find: findLabeledVessel(reCMAVessel)},
	}

	pairs, _ := firstMatch(text, rules)
	if len(pairs) == 0 {
		return nil
	}

	// Weekday annotations stay inside the span; they disambiguate which of
	// several similarly formatted dates the operator is looking at.
	var dates []string
	for _, m := range reWeekdayDate.FindAllStringSubmatch(text, -1) {
		dates = append(dates, m[1])
	}
	dates = dedupe(dates)

	seen := make(map[string]struct{}, len(pairs))
	matches := make([]RawFieldMatch, 0, len(pairs))
	for i, p := range pairs {
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
			Voyage: "-",
			ETD:    etd,
			ETA:    eta,
		})
	}
	return matches
}

// findLabeledVessel adapts a one-group regexp (vessel only) into a rule body.
func findLabeledVessel(re *regexp.Regexp) func(string) []vesselVoyage {
	return func(text string) []vesselVoyage {
		var out []vesselVoyage
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			vessel := normalizeVessel(m[1])
			if !plausibleVessel(vessel) {
				continue
			}
			out = append(out, vesselVoyage{vessel: vessel, voyage: "-"})
		}
		return out
	}
}
