package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

// fakeStore is an in-memory Store with the same uniqueness semantics as the
// real ones. failNext simulates an unreachable remote.
type fakeStore struct {
	mu       sync.Mutex
	vessels  []entity.Vessel
	aliases  []entity.VesselAlias
	failNext error
}

func newFakeStore(vessels ...entity.Vessel) *fakeStore {
	return &fakeStore{vessels: vessels}
}

func vesselNamed(name string) entity.Vessel {
	return entity.Vessel{ID: uuid.New(), Name: name, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func (s *fakeStore) fail() error {
	if s.failNext != nil {
		err := s.failNext
		return err
	}
	return nil
}

func (s *fakeStore) Snapshot(context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	snap := &Snapshot{TakenAt: time.Now()}
	snap.Vessels = append(snap.Vessels, s.vessels...)
	snap.Aliases = append(snap.Aliases, s.aliases...)
	return snap, nil
}

func (s *fakeStore) InsertVessel(_ context.Context, v *entity.Vessel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	for _, existing := range s.vessels {
		if strings.EqualFold(existing.Name, v.Name) {
			return common.NewAppError("VESSEL_EXISTS", v.Name, common.ErrSyncConflict)
		}
	}
	s.vessels = append(s.vessels, *v)
	return nil
}

func (s *fakeStore) InsertAlias(_ context.Context, a *entity.VesselAlias) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	for _, existing := range s.aliases {
		if strings.EqualFold(existing.Alias, a.Alias) {
			return common.NewAppError("ALIAS_EXISTS", a.Alias, common.ErrSyncConflict)
		}
	}
	s.aliases = append(s.aliases, *a)
	return nil
}

func (s *fakeStore) TouchAlias(_ context.Context, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	now := time.Now()
	for i := range s.aliases {
		if strings.EqualFold(s.aliases[i].Alias, alias) {
			s.aliases[i].UsageCount++
			s.aliases[i].LastUsedAt = &now
			return nil
		}
	}
	return common.NewAppError("ALIAS_MISSING", alias, common.ErrNotFound)
}

func (s *fakeStore) Replace(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	s.vessels = append([]entity.Vessel(nil), snap.Vessels...)
	s.aliases = append([]entity.VesselAlias(nil), snap.Aliases...)
	return nil
}

func (s *fakeStore) aliasByText(text string) (entity.VesselAlias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.aliases {
		if strings.EqualFold(a.Alias, text) {
			return a, nil
		}
	}
	return entity.VesselAlias{}, fmt.Errorf("alias %q not present", text)
}
