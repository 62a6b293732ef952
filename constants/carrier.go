package constants

import "strings"

type Carrier string

const (
	Maersk     Carrier = "MAERSK"
	CMACGM     Carrier = "CMA-CGM"
	OOCL       Carrier = "OOCL"
	HapagLloyd Carrier = "HAPAG-LLOYD"
	Evergreen  Carrier = "EVERGREEN"
	ONE        Carrier = "ONE"
	YangMing   Carrier = "YANG-MING"
	MSC        Carrier = "MSC"
	ZIM        Carrier = "ZIM"
	WanHai     Carrier = "WAN-HAI"
	PIL        Carrier = "PIL"
	Generic    Carrier = "GENERIC"
)

// FilenamePrefixes maps a single-letter screenshot filename prefix
// (e.g. "m_schedule.png") to a carrier.
var FilenamePrefixes = map[byte]Carrier{
	'm': Maersk,
	'o': OOCL,
	'c': CMACGM,
	'h': HapagLloyd,
	'e': Evergreen,
	'n': ONE,
	'y': YangMing,
	's': MSC,
	'z': ZIM,
	'w': WanHai,
	'p': PIL,
}

var allCarriers = []Carrier{
	Maersk,
	CMACGM,
	OOCL,
	HapagLloyd,
	Evergreen,
	ONE,
	YangMing,
	MSC,
	ZIM,
	WanHai,
	PIL,
	Generic,
}

func AsStringSlice() []string {
	result := make([]string, len(allCarriers))
	for i, c := range allCarriers {
		result[i] = string(c)
	}
	return result
}

// Canonicalize maps free-form carrier input to a known carrier.
func Canonicalize(input string) (Carrier, bool) {
	if input == "" {
		return Generic, false
	}

	normalized := strings.ToUpper(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Carrier{
		"CMA":           CMACGM,
		"CNC":           CMACGM,
		"CMA CGM":       CMACGM,
		"HAPAG":         HapagLloyd,
		"OCEAN NETWORK": ONE,
		"WANHAI":        WanHai,
		"YANGMING":      YangMing,
	}

	if c, ok := synonyms[normalized]; ok {
		return c, true
	}

	for _, c := range allCarriers {
		if normalized == string(c) {
			return c, true
		}
	}

	return Generic, false
}
