package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheInsertAndSnapshot(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	v := vesselNamed("SPIL NISAKA")
	carrier := string(constants.Maersk)
	v.Carrier = &carrier
	require.NoError(t, c.InsertVessel(ctx, &v))

	a := aliasFor(v, "SPIL NISAK", string(constants.AliasSourceAutoLearned))
	require.NoError(t, c.InsertAlias(ctx, &a))

	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Vessels, 1)
	require.Len(t, snap.Aliases, 1)

	got := snap.Vessels[0]
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, "SPIL NISAKA", got.Name)
	require.NotNil(t, got.Carrier)
	assert.Equal(t, string(constants.Maersk), *got.Carrier)
	assert.True(t, got.IsActive)

	gotAlias := snap.Aliases[0]
	assert.Equal(t, v.ID, gotAlias.VesselID)
	assert.Equal(t, string(constants.AliasSourceAutoLearned), gotAlias.Source)
	assert.Equal(t, 1, gotAlias.UsageCount)
}

func TestCacheUniqueConstraints(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	v := vesselNamed("SPIL NISAKA")
	require.NoError(t, c.InsertVessel(ctx, &v))

	dup := vesselNamed("SPIL NISAKA")
	err := c.InsertVessel(ctx, &dup)
	require.Error(t, err)
	assert.True(t, common.IsConflict(err))

	a := aliasFor(v, "SPIL NISAK", string(constants.AliasSourceAutoLearned))
	require.NoError(t, c.InsertAlias(ctx, &a))

	dupAlias := aliasFor(v, "SPIL NISAK", string(constants.AliasSourceManual))
	err = c.InsertAlias(ctx, &dupAlias)
	require.Error(t, err)
	assert.True(t, common.IsConflict(err))
}

func TestCacheTouchAlias(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	v := vesselNamed("SPIL NISAKA")
	require.NoError(t, c.InsertVessel(ctx, &v))
	a := aliasFor(v, "SPIL NISAK", string(constants.AliasSourceAutoLearned))
	require.NoError(t, c.InsertAlias(ctx, &a))

	require.NoError(t, c.TouchAlias(ctx, "spil nisak"))

	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Aliases, 1)
	assert.Equal(t, 2, snap.Aliases[0].UsageCount)
	assert.NotNil(t, snap.Aliases[0].LastUsedAt)

	err = c.TouchAlias(ctx, "NO SUCH ALIAS")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestCacheReplaceIsDestructive(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	old := vesselNamed("GHOST SHIP")
	require.NoError(t, c.InsertVessel(ctx, &old))
	oldAlias := aliasFor(old, "GHOST", string(constants.AliasSourceManual))
	require.NoError(t, c.InsertAlias(ctx, &oldAlias))

	incoming := vesselNamed("SPIL NISAKA")
	incomingAlias := aliasFor(incoming, "SPIL NISAK", string(constants.AliasSourceAutoLearned))
	require.NoError(t, c.Replace(ctx, &Snapshot{
		Vessels: []entity.Vessel{incoming},
		Aliases: []entity.VesselAlias{incomingAlias},
	}))

	got, err := c.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got.Vessels, 1)
	assert.Equal(t, "SPIL NISAKA", got.Vessels[0].Name)
	require.Len(t, got.Aliases, 1)
	assert.Equal(t, "SPIL NISAK", got.Aliases[0].Alias)
}
