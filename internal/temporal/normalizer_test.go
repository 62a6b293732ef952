package temporal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/internal/common"
)

func ts(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestParseFullDate(t *testing.T) {
	n := NewNormalizer(ts(2026, time.January, 10, 0, 0))

	got, err := n.Parse("16 Jan 2026, 19:00")
	require.NoError(t, err)
	assert.Equal(t, ts(2026, time.January, 16, 19, 0), got)
}

func TestParseDashedDateWithWeekday(t *testing.T) {
	n := NewNormalizer(ts(2026, time.January, 10, 0, 0))

	got, err := n.Parse("Sunday, 11-Jan-2026")
	require.NoError(t, err)
	assert.Equal(t, ts(2026, time.January, 11, 0, 0), got)
}

func TestParseDateOnly(t *testing.T) {
	n := NewNormalizer(ts(2026, time.January, 10, 0, 0))

	got, err := n.Parse("24 Jan 2026")
	require.NoError(t, err)
	assert.Equal(t, ts(2026, time.January, 24, 0, 0), got)
}

func TestParseYearRollover(t *testing.T) {
	// Late-December reference: "05 Jan" is next year's January.
	n := NewNormalizer(ts(2026, time.December, 20, 0, 0))

	got, err := n.Parse("05 Jan, 23:00")
	require.NoError(t, err)
	assert.Equal(t, ts(2027, time.January, 5, 23, 0), got)
}

func TestParseNoRolloverWithinTolerance(t *testing.T) {
	// A just-departed November sailing on a December screenshot stays in
	// the current year.
	n := NewNormalizer(ts(2026, time.December, 20, 0, 0))

	got, err := n.Parse("15 Nov 08:00")
	require.NoError(t, err)
	assert.Equal(t, ts(2026, time.November, 15, 8, 0), got)
}

func TestParseExplicitYearBeatsInference(t *testing.T) {
	n := NewNormalizer(ts(2026, time.December, 20, 0, 0))

	got, err := n.Parse("05 Jan 2026")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
}

func TestParseRejectsFragmentWithoutDayMonth(t *testing.T) {
	n := NewNormalizer(ts(2026, time.January, 10, 0, 0))

	for _, fragment := range []string{"", "19:00", "sometime next week", "2026"} {
		_, err := n.Parse(fragment)
		require.Error(t, err, "fragment %q", fragment)
		assert.True(t, errors.Is(err, common.ErrInvalidFragment), "fragment %q", fragment)
	}
}

func TestParseRejectsImpossibleDay(t *testing.T) {
	n := NewNormalizer(ts(2026, time.January, 10, 0, 0))

	_, err := n.Parse("31 Feb 2026")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidFragment))
}

func TestOrderPairSwaps(t *testing.T) {
	etd := ts(2026, time.January, 24, 22, 0)
	eta := ts(2026, time.January, 16, 19, 0)

	d, a, swapped := OrderPair(&etd, &eta)
	assert.True(t, swapped)
	assert.Equal(t, eta, *d)
	assert.Equal(t, etd, *a)
}

func TestOrderPairKeepsOrderedPair(t *testing.T) {
	etd := ts(2026, time.January, 16, 19, 0)
	eta := ts(2026, time.January, 24, 22, 0)

	d, a, swapped := OrderPair(&etd, &eta)
	assert.False(t, swapped)
	assert.Equal(t, etd, *d)
	assert.Equal(t, eta, *a)
}

func TestOrderPairTolerantOfAbsentEndpoints(t *testing.T) {
	etd := ts(2026, time.January, 16, 19, 0)

	d, a, swapped := OrderPair(&etd, nil)
	assert.False(t, swapped)
	assert.Equal(t, etd, *d)
	assert.Nil(t, a)

	d, a, swapped = OrderPair(nil, nil)
	assert.False(t, swapped)
	assert.Nil(t, d)
	assert.Nil(t, a)
}
