package parser

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/carrier"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

func newTestEngine(t *testing.T, knownVessels ...string) (*Engine, *catalog.Cache) {
	t.Helper()
	ctx := context.Background()

	cache, err := catalog.OpenCache(filepath.Join(t.TempDir(), "cache.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	for _, name := range knownVessels {
		v := entity.Vessel{ID: uuid.New(), Name: name, IsActive: true}
		require.NoError(t, cache.InsertVessel(ctx, &v))
	}

	resolver, err := catalog.NewResolver(ctx, cache, catalog.DefaultThreshold, nil)
	require.NoError(t, err)

	return NewEngine(carrier.NewRegistry(), resolver, nil), cache
}

func warningCodes(opt entity.ScheduleOption) []string {
	codes := make([]string, 0, len(opt.Warnings))
	for _, w := range opt.Warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestParseResolvesAndLearns(t *testing.T) {
	engine, cache := newTestEngine(t, "SPIL NISAKA")

	// OCR dropped the trailing A; fuzzy resolution should recover the
	// canonical name and persist the variant.
	res, err := engine.Parse(context.Background(), Request{
		Text:        "SPIL NISAK 602N ETD 16 Jan 2026 19:00 ETA 24 Jan 2026 22:00",
		CarrierHint: "MAERSK",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.Maersk), res.Carrier)
	require.Len(t, res.Options, 1)

	opt := res.Options[0]
	assert.Equal(t, "SPIL NISAKA", opt.Vessel)
	assert.True(t, opt.Resolved)
	assert.Equal(t, "602N", opt.Voyage)
	require.NotNil(t, opt.Departure)
	assert.Equal(t, time.Date(2026, time.January, 16, 19, 0, 0, 0, time.UTC), *opt.Departure)
	require.NotNil(t, opt.Arrival)
	assert.Equal(t, time.Date(2026, time.January, 24, 22, 0, 0, 0, time.UTC), *opt.Arrival)
	assert.Empty(t, opt.Warnings)

	snap, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Aliases, 1)
	assert.Equal(t, "SPIL NISAK", snap.Aliases[0].Alias)
	assert.Equal(t, string(constants.AliasSourceAutoLearned), snap.Aliases[0].Source)
}

func TestParseSwapsReversedDates(t *testing.T) {
	engine, _ := newTestEngine(t, "SPIL NISAKA")

	res, err := engine.Parse(context.Background(), Request{
		Text:        "SPIL NISAKA 602N ETD 24 Jan 2026 22:00 ETA 16 Jan 2026 19:00",
		CarrierHint: "MAERSK",
	})
	require.NoError(t, err)
	require.Len(t, res.Options, 1)

	opt := res.Options[0]
	assert.Contains(t, warningCodes(opt), entity.WarnSwappedDates)
	require.NotNil(t, opt.Departure)
	require.NotNil(t, opt.Arrival)
	assert.True(t, opt.Departure.Before(*opt.Arrival))
	assert.Equal(t, "16 Jan 2026, 19:00", opt.RawETD)
	assert.Equal(t, "24 Jan 2026, 22:00", opt.RawETA)
}

func TestParseUnknownVesselWarns(t *testing.T) {
	engine, cache := newTestEngine(t, "SPIL NISAKA")

	res, err := engine.Parse(context.Background(), Request{
		Text:        "EVER GIVEN 1234E ETD 16 Jan 2026 19:00 ETA 24 Jan 2026 22:00",
		CarrierHint: "MAERSK",
	})
	require.NoError(t, err)
	require.Len(t, res.Options, 1)

	opt := res.Options[0]
	assert.False(t, opt.Resolved)
	assert.Equal(t, "EVER GIVEN", opt.Vessel)
	assert.Contains(t, warningCodes(opt), entity.WarnUnknownVessel)

	// Nothing below the threshold gets learned.
	snap, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Aliases)
}

func TestParseEmptyText(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Parse(context.Background(), Request{Text: "   \n\t "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestParseAmbiguousDetection(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Parse(context.Background(), Request{
		Text: "transshipment via OOCL feeder, booking with CMA pending",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAmbiguousCarrier))
}

func TestParseEmptyResultCarriesSample(t *testing.T) {
	engine, _ := newTestEngine(t)

	text := "Dear customer, please find our latest tariff attached. " +
		strings.Repeat("Thank you for your continued business. ", 10)
	res, err := engine.Parse(context.Background(), Request{Text: text, CarrierHint: "MAERSK"})
	require.NoError(t, err)
	assert.False(t, res.HasSchedules())
	assert.NotEmpty(t, res.TextSample)
	assert.LessOrEqual(t, len(res.TextSample), textSampleLimit)
}

func TestParseSampleCutsOnRuneBoundary(t *testing.T) {
	engine, _ := newTestEngine(t)

	// A multi-byte rune straddling the sample limit must not be split.
	text := strings.Repeat("x", textSampleLimit-1) + "日本語の運賃表"
	res, err := engine.Parse(context.Background(), Request{Text: text, CarrierHint: "MAERSK"})
	require.NoError(t, err)
	assert.False(t, res.HasSchedules())
	assert.True(t, utf8.ValidString(res.TextSample))
	assert.LessOrEqual(t, len(res.TextSample), textSampleLimit)
}

func TestParseFilenameHintSelectsProfile(t *testing.T) {
	engine, _ := newTestEngine(t, "COSCO PRIDE")

	res, err := engine.Parse(context.Background(), Request{
		Text:         "COSCO PRIDE 067E ETD 16 Jan 2026 19:00 ETA 24 Jan 2026 22:00",
		FilenameHint: "o_weekly_schedule.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.OOCL), res.Carrier)
	require.Len(t, res.Options, 1)
	assert.Equal(t, "COSCO PRIDE", res.Options[0].Vessel)
}

func TestParseHintForCarrierWithoutProfile(t *testing.T) {
	engine, _ := newTestEngine(t)

	// A canonical carrier with no dedicated layout still keeps its
	// identity while extracting generically.
	res, err := engine.Parse(context.Background(), Request{
		Text:        "Vessel: DANUM 175\nETD 16 Jan 2026 19:00",
		CarrierHint: "HAPAG",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.HapagLloyd), res.Carrier)
	require.Len(t, res.Options, 1)
	assert.Equal(t, "DANUM 175", res.Options[0].Vessel)
	assert.Equal(t, "-", res.Options[0].Voyage)
}

func TestParseVoyageCorrection(t *testing.T) {
	engine, _ := newTestEngine(t, "SPIL NISAKA")

	res, err := engine.Parse(context.Background(), Request{
		Text:        "SPIL NISAKA / 6O2N ETD 16 Jan 2026 19:00 ETA 24 Jan 2026 22:00",
		CarrierHint: "MAERSK",
	})
	require.NoError(t, err)
	require.Len(t, res.Options, 1)

	opt := res.Options[0]
	assert.Equal(t, "602N", opt.Voyage)
	assert.Contains(t, warningCodes(opt), entity.WarnVoyageCorrected)
}
