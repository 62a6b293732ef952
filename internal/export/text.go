package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/danuarta/schedules-tracker/internal/entity"
)

const absent = "TBA"

func fieldOr(s string) string {
	if strings.TrimSpace(s) == "" {
		return absent
	}
	return s
}

func stamp(t *time.Time, raw string) string {
	if t != nil {
		return t.Format("02 Jan 2006, 15:04")
	}
	return fieldOr(raw)
}

// FormatTable renders options as a fixed-width ASCII table for terminal use.
// Widths match the format operators already receive, border included, even
// though the border runs one character wider than the rows.
func FormatTable(options []entity.ScheduleOption) string {
	border := "+" + strings.Repeat("-", 68) + "+"
	var b strings.Builder
	b.WriteString(border + "\n")
	fmt.Fprintf(&b, "|%-18s|%-8s|%-20s|%-18s|\n", "VESSEL", "VOYAGE", "ETD", "ETA")
	b.WriteString(border + "\n")

	for _, o := range options {
		fmt.Fprintf(&b, "|%-18s|%-8s|%-20s|%-18s|\n",
			clip(fieldOr(o.Vessel), 16),
			clip(fieldOr(o.Voyage), 6),
			clip(stamp(o.Departure, o.RawETD), 18),
			clip(stamp(o.Arrival, o.RawETA), 16))
	}
	b.WriteString(border)
	return b.String()
}

// FormatEmail renders options as plain key/value text ready to paste into a
// booking email. A single option omits the numbering.
func FormatEmail(options []entity.ScheduleOption) string {
	var lines []string
	if len(options) == 1 {
		o := options[0]
		lines = append(lines,
			fmt.Sprintf("Vessel  : %s", fieldOr(o.Vessel)),
			fmt.Sprintf("Voyage  : %s", fieldOr(o.Voyage)),
			fmt.Sprintf("ETD     : %s", stamp(o.Departure, o.RawETD)),
			fmt.Sprintf("ETA     : %s", stamp(o.Arrival, o.RawETA)),
		)
	} else {
		for i, o := range options {
			lines = append(lines,
				fmt.Sprintf("Option %d:", i+1),
				fmt.Sprintf("  Vessel  : %s", fieldOr(o.Vessel)),
				fmt.Sprintf("  Voyage  : %s", fieldOr(o.Voyage)),
				fmt.Sprintf("  ETD     : %s", stamp(o.Departure, o.RawETD)),
				fmt.Sprintf("  ETA     : %s", stamp(o.Arrival, o.RawETA)),
				"",
			)
		}
	}
	return strings.Join(lines, "\n")
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
