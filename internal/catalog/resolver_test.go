package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/constants"
)

func newTestResolver(t *testing.T, store Store, threshold float64) *Resolver {
	t.Helper()
	r, err := NewResolver(context.Background(), store, threshold, nil)
	require.NoError(t, err)
	return r
}

func TestResolverDefaultsThreshold(t *testing.T) {
	r := newTestResolver(t, newFakeStore(), 0)
	assert.Equal(t, DefaultThreshold, r.Threshold())
}

func TestResolveExactName(t *testing.T) {
	store := newFakeStore(vesselNamed("SPIL NISAKA"))
	r := newTestResolver(t, store, 0.80)

	match, writes := r.Resolve("SPIL NISAKA")
	assert.Equal(t, MatchExact, match.Type)
	assert.Equal(t, "SPIL NISAKA", match.Vessel)
	assert.Empty(t, writes, "exact hits must not propose writes")
}

func TestResolveExactIsCaseAndPunctuationInsensitive(t *testing.T) {
	store := newFakeStore(vesselNamed("JULIUS-S."))
	r := newTestResolver(t, store, 0.80)

	match, _ := r.Resolve("julius s")
	assert.Equal(t, MatchExact, match.Type)
	assert.Equal(t, "JULIUS-S.", match.Vessel)
}

func TestResolveFuzzyLearnsAlias(t *testing.T) {
	store := newFakeStore(vesselNamed("SPIL NISAKA"))
	r := newTestResolver(t, store, 0.80)

	match, writes := r.Resolve("SPIL NISAK")
	require.Equal(t, MatchFuzzy, match.Type)
	assert.Equal(t, "SPIL NISAKA", match.Vessel)
	assert.GreaterOrEqual(t, match.Score, 0.80)

	require.Len(t, writes, 1)
	assert.Equal(t, WriteLearnAlias, writes[0].Kind)
	assert.Equal(t, "SPIL NISAK", writes[0].Alias)

	// Nothing persisted until the caller commits.
	_, err := store.aliasByText("SPIL NISAK")
	assert.Error(t, err)

	require.NoError(t, r.Commit(context.Background(), writes))
	learned, err := store.aliasByText("SPIL NISAK")
	require.NoError(t, err)
	assert.Equal(t, string(constants.AliasSourceAutoLearned), learned.Source)
	assert.Equal(t, 1, learned.UsageCount)
}

func TestResolveLearnedAliasHitsExactNextTime(t *testing.T) {
	store := newFakeStore(vesselNamed("SPIL NISAKA"))
	r := newTestResolver(t, store, 0.80)

	match, writes := r.Resolve("SPIL NISAK")
	require.Equal(t, MatchFuzzy, match.Type)
	require.NoError(t, r.Commit(context.Background(), writes))

	// Same spelling again: alias hit, usage bump proposed.
	match, writes = r.Resolve("SPIL NISAK")
	assert.Equal(t, MatchAlias, match.Type)
	assert.Equal(t, "SPIL NISAKA", match.Vessel)
	require.Len(t, writes, 1)
	assert.Equal(t, WriteBumpUsage, writes[0].Kind)

	require.NoError(t, r.Commit(context.Background(), writes))
	learned, err := store.aliasByText("SPIL NISAK")
	require.NoError(t, err)
	assert.Equal(t, 2, learned.UsageCount)
}

func TestResolveBelowThresholdLearnsNothing(t *testing.T) {
	store := newFakeStore(vesselNamed("SPIL NISAKA"))
	r := newTestResolver(t, store, 0.80)

	match, writes := r.Resolve("EVER GIVEN")
	assert.Equal(t, MatchNone, match.Type)
	assert.Empty(t, match.Vessel)
	assert.Empty(t, writes)
}

func TestResolveThresholdBoundary(t *testing.T) {
	store := newFakeStore(vesselNamed("DANUM 175"))

	// "DANUM 17" vs "DANUM 175": similarity 8/9.
	boundary := 8.0 / 9.0

	r := newTestResolver(t, store, boundary)
	match, _ := r.Resolve("DANUM 17")
	assert.Equal(t, MatchFuzzy, match.Type, "score exactly at threshold is accepted")

	r = newTestResolver(t, store, boundary+0.001)
	match, _ = r.Resolve("DANUM 17")
	assert.Equal(t, MatchNone, match.Type, "score below threshold is rejected")
}

func TestResolveSkipsInactiveVessels(t *testing.T) {
	inactive := vesselNamed("SPIL NISAKA")
	inactive.IsActive = false
	store := newFakeStore(inactive)
	r := newTestResolver(t, store, 0.80)

	match, _ := r.Resolve("SPIL NISAKA")
	assert.Equal(t, MatchNone, match.Type)
}

func TestResolveEmptyInput(t *testing.T) {
	r := newTestResolver(t, newFakeStore(), 0.80)

	match, writes := r.Resolve("   ")
	assert.Equal(t, MatchNone, match.Type)
	assert.Empty(t, writes)
}
