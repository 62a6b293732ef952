// Package temporal turns raw date/time fragments recovered from schedule
// screenshots into canonical timestamps, including year inference for
// year-less fragments and departure/arrival ordering.
package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/danuarta/schedules-tracker/internal/common"
)

// rolloverTolerance is how many months earlier than the reference month a
// year-less fragment may point before it is pushed into the next year.
// Schedules look forward: "05 Jan" seen in late December means January next
// year, while "15 Nov" seen on December 20 still means this year's November
// (a just-departed sailing on the same screenshot).
const rolloverTolerance = 1

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	// "16 Jan 2026", "16Jan", "11-Jan-2026" — day, month name, optional year.
	// Weekday annotations around the date are tolerated but never required.
	reDayMonth = regexp.MustCompile(`(?i)\b(\d{1,2})[\s\-/]*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s\-/,]*(\d{4})?`)
	// "19:00"
	reClock = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// Normalizer resolves raw fragments against a fixed current-time reference.
type Normalizer struct {
	ref time.Time
}

// NewNormalizer returns a normalizer anchored at the given reference time,
// used for year inference on year-less fragments.
func NewNormalizer(ref time.Time) *Normalizer {
	return &Normalizer{ref: ref}
}

// Parse turns a raw fragment into a canonical UTC timestamp.
//
// A fragment must carry at least day+month; anything less fails with
// ErrInvalidFragment and callers record the timestamp as absent rather than
// defaulting it. Bracketed or leading weekday annotations ("Sunday,
// 11-Jan-2026") are part of the fragment and simply parsed around —
// stripping them is the caller's loss, since they disambiguate similar dates
// on the same screenshot.
func (n *Normalizer) Parse(fragment string) (time.Time, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return time.Time{}, common.NewAppError("EMPTY_FRAGMENT",
			"no date text", common.ErrInvalidFragment)
	}

	m := reDayMonth.FindStringSubmatch(fragment)
	if m == nil {
		return time.Time{}, common.NewAppError("UNPARSEABLE_FRAGMENT",
			fmt.Sprintf("no day+month in %q", fragment), common.ErrInvalidFragment)
	}

	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, common.NewAppError("BAD_DAY",
			fmt.Sprintf("day out of range in %q", fragment), common.ErrInvalidFragment)
	}
	month := months[strings.ToLower(m[2])[:3]]

	year := 0
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	} else {
		year = n.inferYear(month)
	}

	hour, minute := 0, 0
	if c := reClock.FindStringSubmatch(fragment); c != nil {
		hour, _ = strconv.Atoi(c[1])
		minute, _ = strconv.Atoi(c[2])
		if hour > 23 || minute > 59 {
			hour, minute = 0, 0
		}
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if t.Month() != month {
		// time.Date normalized an impossible day (e.g. 31 Feb) forward.
		return time.Time{}, common.NewAppError("BAD_DAY",
			fmt.Sprintf("day %d does not exist in %s", day, month), common.ErrInvalidFragment)
	}
	return t, nil
}

// inferYear picks the year for a year-less month using month-order logic
// against the reference date: a month earlier in the calendar than the
// reference month by more than the tolerance belongs to the next year
// (the December -> January rollover), otherwise to the current year.
func (n *Normalizer) inferYear(month time.Month) int {
	refYear, refMonth := n.ref.Year(), n.ref.Month()
	if int(month) < int(refMonth)-rolloverTolerance {
		return refYear + 1
	}
	return refYear
}

// OrderPair enforces the departure-before-arrival invariant. When both
// endpoints are present and departure is strictly after arrival, the two are
// swapped and true is returned so the caller can flag the option. This
// guards against a profile extracting the two fields in the wrong visual
// order.
func OrderPair(departure, arrival *time.Time) (*time.Time, *time.Time, bool) {
	if departure == nil || arrival == nil {
		return departure, arrival, false
	}
	if departure.After(*arrival) {
		return arrival, departure, true
	}
	return departure, arrival, false
}
