package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	schedulespb "github.com/danuarta/schedules-tracker/gen/proto/schedules/v1"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
)

type SyncService struct {
	schedulespb.UnimplementedSyncServiceServer
	syncer   *catalog.Syncer
	resolver *catalog.Resolver
	logger   *slog.Logger
}

func NewSyncService(syncer *catalog.Syncer, resolver *catalog.Resolver, logger *slog.Logger) *SyncService {
	return &SyncService{
		syncer:   syncer,
		resolver: resolver,
		logger:   logger,
	}
}

func (s *SyncService) Push(ctx context.Context, _ *schedulespb.PushRequest) (*schedulespb.PushResponse, error) {
	stats, err := s.syncer.Push(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStoreUnavailable) {
			return nil, common.UnavailableError(fmt.Sprintf("remote store unavailable: %v", err))
		}
		s.logger.Error("push failed", "error", err)
		return nil, common.InternalErrorf("push: %v", err)
	}
	return &schedulespb.PushResponse{
		VesselsPushed: int32(stats.VesselsPushed),
		AliasesPushed: int32(stats.AliasesPushed),
		Skipped:       int32(stats.Skipped),
		Conflicts:     stats.Conflicts,
	}, nil
}

func (s *SyncService) Pull(ctx context.Context, _ *schedulespb.PullRequest) (*schedulespb.PullResponse, error) {
	snap, err := s.syncer.Pull(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStoreUnavailable) {
			return nil, common.UnavailableError(fmt.Sprintf("remote store unavailable: %v", err))
		}
		s.logger.Error("pull failed", "error", err)
		return nil, common.InternalErrorf("pull: %v", err)
	}

	if s.resolver != nil {
		if err := s.resolver.Reload(ctx); err != nil {
			s.logger.Warn("resolver reload failed after pull", "error", err)
		}
	}
	return &schedulespb.PullResponse{
		Vessels: int32(len(snap.Vessels)),
		Aliases: int32(len(snap.Aliases)),
	}, nil
}
