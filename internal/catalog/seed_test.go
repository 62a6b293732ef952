package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedFromFile(t *testing.T) {
	path := writeSeed(t, `[
		{"name": "SPIL NISAKA", "carrier": "MAERSK", "aliases": ["SPILNISAKA"]},
		{"name": "DANUM 175", "carrier": "CMA"}
	]`)
	store := newFakeStore()

	stats, err := SeedFromFile(context.Background(), store, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Vessels)
	assert.Equal(t, 1, stats.Aliases)

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Vessels, 2)

	v, ok := snap.VesselByName("DANUM 175")
	require.True(t, ok)
	require.NotNil(t, v.Carrier)
	assert.Equal(t, string(constants.CMACGM), *v.Carrier, "carrier synonyms are canonicalized")

	learned, err := store.aliasByText("SPILNISAKA")
	require.NoError(t, err)
	assert.Equal(t, string(constants.AliasSourceImported), learned.Source)
}

func TestSeedIsRerunSafe(t *testing.T) {
	path := writeSeed(t, `[{"name": "SPIL NISAKA", "aliases": ["SPILNISAKA"]}]`)
	store := newFakeStore()

	_, err := SeedFromFile(context.Background(), store, path, nil)
	require.NoError(t, err)

	stats, err := SeedFromFile(context.Background(), store, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Vessels)
	assert.Equal(t, 0, stats.Aliases)
	assert.NotZero(t, stats.Skipped)

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Vessels, 1)
	assert.Len(t, snap.Aliases, 1)
}

func TestSeedRejectsMalformedFile(t *testing.T) {
	for name, content := range map[string]string{
		"not json":      `vessels: nope`,
		"missing name":  `[{"carrier": "MAERSK"}]`,
		"wrong shape":   `{"name": "SPIL NISAKA"}`,
		"unknown field": `[{"name": "X Y Z", "flag": true}]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeSeed(t, content)
			_, err := SeedFromFile(context.Background(), newFakeStore(), path, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidInput))
		})
	}
}
