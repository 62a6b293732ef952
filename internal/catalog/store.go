// Package catalog holds the vessel reference catalog: the identity resolver,
// the local SQLite cache, seeding, and the explicit push/pull
// synchronization between the cache and the remote authoritative store.
package catalog

import (
	"context"
	"time"

	"github.com/danuarta/schedules-tracker/internal/entity"
)

// Snapshot is a full, consistent read of one catalog copy.
type Snapshot struct {
	Vessels []entity.Vessel
	Aliases []entity.VesselAlias
	TakenAt time.Time
}

// Store is the narrow contract both catalog copies implement: the local
// SQLite cache and the remote authoritative store. A call either fully
// applies or fails with no partial success reported.
type Store interface {
	// Snapshot reads every vessel and alias.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// InsertVessel adds a vessel. Name collision fails with ErrSyncConflict.
	InsertVessel(ctx context.Context, v *entity.Vessel) error

	// InsertAlias adds an alias. Alias-text collision fails with
	// ErrSyncConflict (alias text is unique across the whole catalog).
	InsertAlias(ctx context.Context, a *entity.VesselAlias) error

	// TouchAlias bumps an alias usage counter and refreshes last-used.
	// Matched alias text is never rewritten.
	TouchAlias(ctx context.Context, alias string) error

	// Replace destructively swaps this copy's contents for the snapshot.
	// Used by pull; all-or-nothing.
	Replace(ctx context.Context, snap *Snapshot) error
}

// VesselByName finds a vessel in a snapshot by exact name.
func (s *Snapshot) VesselByName(name string) (*entity.Vessel, bool) {
	for i := range s.Vessels {
		if s.Vessels[i].Name == name {
			return &s.Vessels[i], true
		}
	}
	return nil, false
}
