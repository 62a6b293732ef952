package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/internal/entity"
)

func ts(day, hour int) *time.Time {
	t := time.Date(2026, time.January, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestFormatTable(t *testing.T) {
	out := FormatTable([]entity.ScheduleOption{
		{Vessel: "SPIL NISAKA", Voyage: "602N", Departure: ts(16, 19), Arrival: ts(24, 22)},
		{Vessel: "JULIUS S.", Voyage: "603N", RawETD: "pending"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)

	// The border runs one character wider than the rows, matching the
	// format operators already receive.
	border := "+" + strings.Repeat("-", 68) + "+"
	assert.Equal(t, border, lines[0])
	assert.Equal(t, border, lines[2])
	assert.Equal(t, border, lines[5])
	assert.Contains(t, lines[1], "VESSEL")
	assert.Contains(t, lines[1], "VOYAGE")

	assert.Contains(t, lines[3], "SPIL NISAKA")
	assert.Contains(t, lines[3], "602N")
	assert.Contains(t, lines[3], "16 Jan 2026, 19:00")
	assert.Contains(t, lines[3], "24 Jan 2026, 22:") // ETA column clips to 16

	// No parsed times: raw span where present, TBA where not.
	assert.Contains(t, lines[4], "pending")
	assert.Contains(t, lines[4], "TBA")

	for _, i := range []int{1, 3, 4} {
		assert.Len(t, lines[i], len(border)-1, "rows are one narrower than the border")
	}
}

func TestFormatTableClipsLongFields(t *testing.T) {
	out := FormatTable([]entity.ScheduleOption{
		{Vessel: "EXTREMELY LONG VESSEL NAME", Voyage: "1234567W"},
	})
	assert.Contains(t, out, "EXTREMELY LONG V")
	assert.NotContains(t, out, "EXTREMELY LONG VE")
	assert.Contains(t, out, "123456")
	assert.NotContains(t, out, "1234567")
}

func TestFormatEmailSingleOption(t *testing.T) {
	out := FormatEmail([]entity.ScheduleOption{
		{Vessel: "SPIL NISAKA", Voyage: "602N", Departure: ts(16, 19), Arrival: ts(24, 22)},
	})

	assert.NotContains(t, out, "Option")
	assert.Contains(t, out, "Vessel  : SPIL NISAKA")
	assert.Contains(t, out, "Voyage  : 602N")
	assert.Contains(t, out, "ETD     : 16 Jan 2026, 19:00")
	assert.Contains(t, out, "ETA     : 24 Jan 2026, 22:00")
}

func TestFormatEmailMultipleOptions(t *testing.T) {
	out := FormatEmail([]entity.ScheduleOption{
		{Vessel: "SPIL NISAKA", Voyage: "602N", Departure: ts(16, 19)},
		{Vessel: "JULIUS S.", Voyage: "603N"},
	})

	assert.Contains(t, out, "Option 1:")
	assert.Contains(t, out, "Option 2:")
	assert.Contains(t, out, "  Vessel  : JULIUS S.")
	assert.Contains(t, out, "  ETA     : TBA")
}
