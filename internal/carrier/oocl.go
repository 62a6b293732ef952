package carrier

import (
	"regexp"

	"github.com/danuarta/schedules-tracker/constants"
)

// OOCLProfile extracts the OOCL event-list layout: vessel+voyage header
// followed by per-location events carrying year-less "7 Jan 23:00" stamps.
// The missing year makes this profile the main customer of the normalizer's
// rollover inference.
type OOCLProfile struct{}

var ooclSignatures = []string{"oocl", "cy cut-off", "laden pickup"}

var reOOCLVessel = regexp.MustCompile(`([A-Z][A-Z .\-]{3,20})\s+(\d{3,4}[A-Z]?)\b`)

func (OOCLProfile) Name() constants.Carrier { return constants.OOCL }

func (OOCLProfile) Detect(text string) int {
	return countSignatures(text, ooclSignatures)
}

func (OOCLProfile) Extract(text string) []RawFieldMatch {
	rules := []matchRule{
		{name: "header-pair", find: findVesselVoyage(reOOCLVessel)},
	}

	pairs, _ := firstMatch(text, rules)
	if len(pairs) == 0 {
		return nil
	}

	var dates []string
	for _, m := range reDateTime.FindAllStringSubmatch(text, -1) {
		dates = append(dates, m[1]+", "+m[2])
	}
	dates = dedupe(dates)

	matches := make([]RawFieldMatch, 0, len(pairs))
	for i, p := range pairs {
		if !plausibleVessel(p.vessel) {
			continue
		}
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
