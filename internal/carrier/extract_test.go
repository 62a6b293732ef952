package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaerskExtractSlashDelimited(t *testing.T) {
	text := `Maersk Point-to-point results
VESSEL/VOYAGE
SPIL NISAKA / 602N
ETD: 16 Jan 2026, 19:00
ETA: 24 Jan 2026, 22:00`

	matches := MaerskProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "SPIL NISAKA", matches[0].Vessel)
	assert.Equal(t, "602N", matches[0].Voyage)
	assert.Equal(t, "16 Jan 2026, 19:00", matches[0].ETD)
	assert.Equal(t, "24 Jan 2026, 22:00", matches[0].ETA)
}

func TestMaerskExtractWhitespaceOnly(t *testing.T) {
	// Degraded recognition loses the slash; the whitespace rule backs it up.
	text := "SPIL NISAKA 602N ETD 16 Jan 2026 19:00 ETA 24 Jan 2026 22:00"

	matches := MaerskProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "SPIL NISAKA", matches[0].Vessel)
	assert.Equal(t, "602N", matches[0].Voyage)
	assert.Equal(t, "16 Jan 2026, 19:00", matches[0].ETD)
	assert.Equal(t, "24 Jan 2026, 22:00", matches[0].ETA)
}

func TestMaerskExtractConfusedVoyageDigits(t *testing.T) {
	// Recognition turns 0 into O; the slash anchor lets the mangled code
	// through so correction can repair it downstream.
	text := `SPIL NISAKA / 6O2N
ETD 16 Jan 2026, 19:00
ETA 24 Jan 2026, 22:00`

	matches := MaerskProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "6O2N", matches[0].Voyage)

	corrected, changed := CorrectVoyage(matches[0].Voyage)
	assert.True(t, changed)
	assert.Equal(t, "602N", corrected)
}

func TestMaerskExtractLowercaseConfusedVoyageDigits(t *testing.T) {
	// Lowercase lookalikes survive the slash anchor too; the span is
	// uppercased on capture and repaired from there.
	cases := []struct {
		raw       string
		captured  string
		corrected string
	}{
		{"6l2N", "6L2N", "612N"},
		{"6o2N", "6O2N", "602N"},
		{"6|2N", "6|2N", "612N"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			text := "SPIL NISAKA / " + tc.raw + "\nETD 16 Jan 2026, 19:00\nETA 24 Jan 2026, 22:00"

			matches := MaerskProfile{}.Extract(text)
			require.Len(t, matches, 1)
			assert.Equal(t, tc.captured, matches[0].Voyage)

			corrected, changed := CorrectVoyage(matches[0].Voyage)
			assert.True(t, changed)
			assert.Equal(t, tc.corrected, corrected)
		})
	}
}

func TestMaerskExtractMultipleOptions(t *testing.T) {
	text := `Maersk
SPIL NISAKA / 602N
ETD 16 Jan 2026, 19:00
ETA 24 Jan 2026, 22:00
JULIUS S. / 603N
ETD 23 Jan 2026, 19:00
ETA 31 Jan 2026, 22:00`

	matches := MaerskProfile{}.Extract(text)
	require.Len(t, matches, 2)
	assert.Equal(t, "SPIL NISAKA", matches[0].Vessel)
	assert.Equal(t, "JULIUS S.", matches[1].Vessel)
	assert.Equal(t, "603N", matches[1].Voyage)
	assert.Equal(t, "23 Jan 2026, 19:00", matches[1].ETD)
}

func TestMaerskExtractDedupesRepeatedVoyage(t *testing.T) {
	text := `SPIL NISAKA / 602N
SPIL NISAKA / 602N
ETD 16 Jan 2026, 19:00
ETA 24 Jan 2026, 22:00`

	matches := MaerskProfile{}.Extract(text)
	require.Len(t, matches, 1)
}

func TestMaerskExtractNothing(t *testing.T) {
	matches := MaerskProfile{}.Extract("no schedule content here")
	assert.Empty(t, matches)
}

func TestCMAExtract(t *testing.T) {
	text := `CNC Network
Vessel DANUM 175
Departure Jakarta Sunday, 11-Jan-2026
Arrival Singapore Tuesday, 13-Jan-2026`

	matches := CMAProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "DANUM 175", matches[0].Vessel)
	assert.Equal(t, "-", matches[0].Voyage, "CMA layout carries no voyage code")
	assert.Equal(t, "Sunday, 11-Jan-2026", matches[0].ETD)
	assert.Equal(t, "Tuesday, 13-Jan-2026", matches[0].ETA)
}

func TestCMAExtractSplitsGluedVesselName(t *testing.T) {
	text := `Vessel DANUM175
Departure Sunday, 11-Jan-2026
Arrival Tuesday, 13-Jan-2026`

	matches := CMAProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "DANUM 175", matches[0].Vessel)
}

func TestOOCLExtract(t *testing.T) {
	text := `OOCL
COSCO PRIDE 067E
CY Cut-off 5 Jan 12:00
ETD 7 Jan 23:00
Laden pickup`

	matches := OOCLProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "COSCO PRIDE", matches[0].Vessel)
	assert.Equal(t, "067E", matches[0].Voyage)
	assert.Equal(t, "5 Jan, 12:00", matches[0].ETD)
	assert.Equal(t, "7 Jan, 23:00", matches[0].ETA)
}

func TestGenericExtractVesselLabel(t *testing.T) {
	text := `Sailing advice
Vessel: KOTA RAJIN
ETD 16 Jan 2026
ETA 24 Jan 2026`

	matches := GenericProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "KOTA RAJIN", matches[0].Vessel)
	assert.Equal(t, "16 Jan 2026", matches[0].ETD)
	assert.Equal(t, "24 Jan 2026", matches[0].ETA)
}

func TestGenericExtractMVPrefix(t *testing.T) {
	text := `Booking confirmed on M/V MERATUS GORONTALO
ETD 16 Jan 2026
ETA 24 Jan 2026`

	matches := GenericProfile{}.Extract(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "MERATUS GORONTALO", matches[0].Vessel)
}

func TestSkipTokensRejectedAsVessels(t *testing.T) {
	assert.True(t, isSkipToken("VESSEL"))
	assert.True(t, isSkipToken("CY Cut-Off"))
	assert.True(t, isSkipToken("CMA CGM"))
	assert.False(t, isSkipToken("SPIL NISAKA"))

	assert.False(t, plausibleVessel("AB"))
	assert.False(t, plausibleVessel("VOYAGE"))
	assert.True(t, plausibleVessel("DANUM 175"))
}

func TestNormalizeVessel(t *testing.T) {
	assert.Equal(t, "DANUM 175", normalizeVessel("DANUM175"))
	assert.Equal(t, "SPIL NISAKA", normalizeVessel("  spil   nisaka "))
}
