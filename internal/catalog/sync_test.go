package catalog

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

func aliasFor(v entity.Vessel, text, source string) entity.VesselAlias {
	now := time.Now()
	return entity.VesselAlias{
		ID:         uuid.New(),
		VesselID:   v.ID,
		Alias:      text,
		Source:     source,
		Confidence: 0.9,
		UsageCount: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPushPromotesLocalLearning(t *testing.T) {
	shared := vesselNamed("SPIL NISAKA")
	localOnly := vesselNamed("DANUM 175")

	local := newFakeStore(shared, localOnly)
	local.aliases = append(local.aliases,
		aliasFor(shared, "SPIL NISAK", string(constants.AliasSourceAutoLearned)))
	remote := newFakeStore(shared)

	syncer := NewSyncer(local, remote, time.Second, nil)
	stats, err := syncer.Push(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.VesselsPushed)
	assert.Equal(t, 1, stats.AliasesPushed)
	assert.Equal(t, 1, stats.Skipped, "shared vessel is skipped")
	assert.Empty(t, stats.Conflicts)

	snap, err := remote.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Vessels, 2)
	require.Len(t, snap.Aliases, 1)
	assert.Equal(t, string(constants.AliasSourceAutoLearned), snap.Aliases[0].Source,
		"source tag survives the push")
}

func TestPushRemoteWinsOnNameConflict(t *testing.T) {
	// Same vessel name created independently on both sides.
	localVessel := vesselNamed("SPIL NISAKA")
	remoteVessel := vesselNamed("SPIL NISAKA")

	local := newFakeStore(localVessel)
	local.aliases = append(local.aliases,
		aliasFor(localVessel, "SPIL NISAK", string(constants.AliasSourceAutoLearned)))
	remote := newFakeStore(remoteVessel)

	syncer := NewSyncer(local, remote, time.Second, nil)
	stats, err := syncer.Push(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.VesselsPushed)
	assert.Contains(t, stats.Conflicts, `vessel "SPIL NISAKA"`)

	// The alias crossed over, reattached to the remote vessel.
	require.Equal(t, 1, stats.AliasesPushed)
	snap, err := remote.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Aliases, 1)
	assert.Equal(t, remoteVessel.ID, snap.Aliases[0].VesselID)

	// Local store untouched.
	localSnap, err := local.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, localSnap.Vessels, 1)
	assert.Equal(t, localVessel.ID, localSnap.Vessels[0].ID)
}

func TestPushIsIdempotent(t *testing.T) {
	v := vesselNamed("SPIL NISAKA")
	local := newFakeStore(v)
	local.aliases = append(local.aliases,
		aliasFor(v, "SPIL NISAK", string(constants.AliasSourceAutoLearned)))
	remote := newFakeStore()

	syncer := NewSyncer(local, remote, time.Second, nil)
	_, err := syncer.Push(context.Background())
	require.NoError(t, err)

	stats, err := syncer.Push(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.VesselsPushed)
	assert.Equal(t, 0, stats.AliasesPushed)
	assert.Equal(t, 2, stats.Skipped)
}

func TestPullReplacesLocal(t *testing.T) {
	remoteVessel := vesselNamed("SPIL NISAKA")
	remote := newFakeStore(remoteVessel)

	localOnly := vesselNamed("GHOST SHIP")
	local := newFakeStore(localOnly)

	syncer := NewSyncer(local, remote, time.Second, nil)
	snap, err := syncer.Pull(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Vessels, 1)

	localSnap, err := local.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, localSnap.Vessels, 1)
	assert.Equal(t, "SPIL NISAKA", localSnap.Vessels[0].Name,
		"pull is destructive: local-only rows are gone")
}

func TestPushThenPullRoundTrip(t *testing.T) {
	v := vesselNamed("SPIL NISAKA")
	local := newFakeStore(v)
	local.aliases = append(local.aliases,
		aliasFor(v, "SPIL NISAK", string(constants.AliasSourceAutoLearned)))
	remote := newFakeStore()

	syncer := NewSyncer(local, remote, time.Second, nil)
	_, err := syncer.Push(context.Background())
	require.NoError(t, err)
	_, err = syncer.Pull(context.Background())
	require.NoError(t, err)

	learned, err := local.aliasByText("SPIL NISAK")
	require.NoError(t, err)
	assert.Equal(t, string(constants.AliasSourceAutoLearned), learned.Source,
		"auto-learned alias survives push then pull")
}

func TestRemoteFailureSurfacesAsUnavailable(t *testing.T) {
	local := newFakeStore(vesselNamed("SPIL NISAKA"))
	remote := newFakeStore()
	remote.failNext = context.DeadlineExceeded

	syncer := NewSyncer(local, remote, time.Second, nil)
	_, err := syncer.Push(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStoreUnavailable))

	_, err = syncer.Pull(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStoreUnavailable))
}

func TestRemoteConnectionRefusedSurfacesAsUnavailable(t *testing.T) {
	local := newFakeStore(vesselNamed("SPIL NISAKA"))
	remote := newFakeStore()
	remote.failNext = &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	syncer := NewSyncer(local, remote, time.Second, nil)
	_, err := syncer.Pull(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStoreUnavailable))
}
