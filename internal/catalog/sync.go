package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/danuarta/schedules-tracker/internal/common"
)

// Syncer moves catalog state between the local cache and the authoritative
// remote store. Neither direction runs automatically: the operator decides
// when local learning is good enough to promote and when to refresh.
type Syncer struct {
	local   Store
	remote  Store
	timeout time.Duration
	logger  *slog.Logger
}

// PushStats summarizes one push run.
type PushStats struct {
	VesselsPushed int
	AliasesPushed int
	Skipped       int
	Conflicts     []string
}

// NewSyncer wires the two stores. timeout bounds every remote round trip.
func NewSyncer(local, remote Store, timeout time.Duration, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{local: local, remote: remote, timeout: timeout, logger: logger}
}

// Push promotes locally learned vessels and aliases to the remote store.
// Rows already present remotely are skipped, and collisions on name or alias
// text are resolved in the remote's favor: the remote row stands, the local
// row is reported in Conflicts. The local store is never modified.
func (s *Syncer) Push(ctx context.Context) (*PushStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	localSnap, err := s.local.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot local: %w", err)
	}
	remoteSnap, err := s.remote.Snapshot(ctx)
	if err != nil {
		return nil, s.remoteErr("snapshot remote", err)
	}

	remoteVesselIDs := make(map[uuid.UUID]struct{}, len(remoteSnap.Vessels))
	remoteNames := make(map[string]uuid.UUID, len(remoteSnap.Vessels))
	for _, v := range remoteSnap.Vessels {
		remoteVesselIDs[v.ID] = struct{}{}
		remoteNames[v.Name] = v.ID
	}
	remoteAliases := make(map[string]struct{}, len(remoteSnap.Aliases))
	for _, a := range remoteSnap.Aliases {
		remoteAliases[a.Alias] = struct{}{}
	}

	stats := &PushStats{}

	// Vessel IDs that exist remotely (either pre-existing or just pushed),
	// so alias pushes only reference resolvable parents.
	knownRemote := remoteVesselIDs
	// Local IDs remapped onto an existing remote vessel with the same name.
	remapped := make(map[uuid.UUID]uuid.UUID)

	for i := range localSnap.Vessels {
		v := localSnap.Vessels[i]
		if _, ok := remoteVesselIDs[v.ID]; ok {
			stats.Skipped++
			continue
		}
		if remoteID, ok := remoteNames[v.Name]; ok {
			// Same name under a different ID: remote wins, local aliases
			// reattach to the remote vessel.
			remapped[v.ID] = remoteID
			stats.Conflicts = append(stats.Conflicts, fmt.Sprintf("vessel %q", v.Name))
			stats.Skipped++
			continue
		}
		if err := s.remote.InsertVessel(ctx, &v); err != nil {
			if common.IsConflict(err) {
				stats.Conflicts = append(stats.Conflicts, fmt.Sprintf("vessel %q", v.Name))
				stats.Skipped++
				continue
			}
			return stats, s.remoteErr(fmt.Sprintf("push vessel %q", v.Name), err)
		}
		knownRemote[v.ID] = struct{}{}
		stats.VesselsPushed++
	}

	for i := range localSnap.Aliases {
		a := localSnap.Aliases[i]
		if _, ok := remoteAliases[a.Alias]; ok {
			stats.Skipped++
			continue
		}
		if remoteID, ok := remapped[a.VesselID]; ok {
			a.VesselID = remoteID
		}
		if _, ok := knownRemote[a.VesselID]; !ok {
			// Parent vessel never made it across. Keep the alias local.
			stats.Conflicts = append(stats.Conflicts, fmt.Sprintf("alias %q (orphaned)", a.Alias))
			stats.Skipped++
			continue
		}
		if err := s.remote.InsertAlias(ctx, &a); err != nil {
			if common.IsConflict(err) {
				stats.Conflicts = append(stats.Conflicts, fmt.Sprintf("alias %q", a.Alias))
				stats.Skipped++
				continue
			}
			return stats, s.remoteErr(fmt.Sprintf("push alias %q", a.Alias), err)
		}
		stats.AliasesPushed++
	}

	s.logger.Info("catalog.sync.push.done",
		"vessels", stats.VesselsPushed,
		"aliases", stats.AliasesPushed,
		"skipped", stats.Skipped,
		"conflicts", len(stats.Conflicts))
	return stats, nil
}

// Pull replaces the entire local cache with the remote state. Local-only
// rows are discarded, which is why operators push before pulling.
func (s *Syncer) Pull(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snap, err := s.remote.Snapshot(ctx)
	if err != nil {
		return nil, s.remoteErr("snapshot remote", err)
	}
	if err := s.local.Replace(ctx, snap); err != nil {
		return nil, fmt.Errorf("replace local cache: %w", err)
	}
	s.logger.Info("catalog.sync.pull.done",
		"vessels", len(snap.Vessels), "aliases", len(snap.Aliases))
	return snap, nil
}

func (s *Syncer) remoteErr(op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return common.NewAppError("REMOTE_TIMEOUT",
			fmt.Sprintf("%s: remote did not answer in time", op), common.ErrStoreUnavailable)
	case errors.As(err, &netErr):
		return common.NewAppError("REMOTE_UNREACHABLE",
			fmt.Sprintf("%s: remote is unreachable", op), common.ErrStoreUnavailable)
	}
	return common.WrapError(err, fmt.Sprintf("%s failed", op))
}
