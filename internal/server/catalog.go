package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danuarta/schedules-tracker/constants"
	schedulespb "github.com/danuarta/schedules-tracker/gen/proto/schedules/v1"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
	"github.com/danuarta/schedules-tracker/internal/repository"
	"github.com/danuarta/schedules-tracker/internal/utils"
)

type CatalogService struct {
	schedulespb.UnimplementedCatalogServiceServer
	catalogRepo repository.CatalogRepository
	resolver    *catalog.Resolver
	logger      *slog.Logger
}

func NewCatalogService(catalogRepo repository.CatalogRepository, resolver *catalog.Resolver, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *CatalogService) ListVessels(ctx context.Context, req *schedulespb.ListVesselsRequest) (*schedulespb.ListVesselsResponse, error) {
	vessels, err := s.catalogRepo.ListVessels(ctx)
	if err != nil {
		s.logger.Error("failed to list vessels", "error", err)
		return nil, common.InternalErrorf("list vessels: %v", err)
	}

	out := make([]*schedulespb.Vessel, 0, len(vessels))
	for _, v := range vessels {
		pb := utils.ToPBVessel(v)
		if req.GetIncludeAliases() {
			aliases, err := s.catalogRepo.ListAliases(ctx, v.ID)
			if err != nil {
				s.logger.Error("failed to list aliases", "vessel_id", v.ID, "error", err)
				return nil, common.InternalErrorf("list aliases: %v", err)
			}
			for _, a := range aliases {
				pb.Aliases = append(pb.Aliases, utils.ToPBVesselAlias(a))
			}
		}
		out = append(out, pb)
	}
	return &schedulespb.ListVesselsResponse{Vessels: out}, nil
}

func (s *CatalogService) AddVessel(ctx context.Context, req *schedulespb.AddVesselRequest) (*schedulespb.AddVesselResponse, error) {
	validator := common.NewValidator()
	validator.Field("name", req.GetName(), common.Required)
	validator.Field("carrier", req.GetCarrier(), common.CarrierID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	name := strings.ToUpper(strings.TrimSpace(req.GetName()))
	v := &entity.Vessel{ID: uuid.New(), Name: name, IsActive: true}
	if c := strings.TrimSpace(req.GetCarrier()); c != "" {
		carrier, _ := constants.Canonicalize(c)
		cs := string(carrier)
		v.Carrier = &cs
	}

	if err := s.catalogRepo.InsertVessel(ctx, v); err != nil {
		if common.IsConflict(err) {
			return nil, status.Errorf(codes.AlreadyExists, "vessel %q already exists", name)
		}
		s.logger.Error("failed to add vessel", "name", name, "error", err)
		return nil, common.InternalErrorf("add vessel: %v", err)
	}

	s.reloadIndex(ctx)
	s.logger.Info("vessel added", "name", name)
	return &schedulespb.AddVesselResponse{Vessel: utils.ToPBVessel(v)}, nil
}

func (s *CatalogService) AddAlias(ctx context.Context, req *schedulespb.AddAliasRequest) (*schedulespb.AddAliasResponse, error) {
	validator := common.NewValidator()
	validator.Field("vessel_id", req.GetVesselId(), common.UUID)
	validator.Field("alias", req.GetAlias(), common.Required)
	validator.Field("source", req.GetSource(), common.AliasSource)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	vesselID, _ := uuid.Parse(req.GetVesselId())
	alias := strings.ToUpper(strings.TrimSpace(req.GetAlias()))
	source := req.GetSource()
	if source == "" {
		source = string(constants.AliasSourceManual)
	}

	if _, err := s.catalogRepo.GetVessel(ctx, vesselID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "vessel %s not found", vesselID)
		}
		s.logger.Error("failed to load vessel", "id", vesselID, "error", err)
		return nil, common.InternalErrorf("load vessel: %v", err)
	}

	a := &entity.VesselAlias{
		ID:         uuid.New(),
		VesselID:   vesselID,
		Alias:      alias,
		Source:     source,
		Confidence: 1.0,
	}
	if err := s.catalogRepo.InsertAlias(ctx, a); err != nil {
		if common.IsConflict(err) {
			return nil, status.Errorf(codes.AlreadyExists, "alias %q already exists", alias)
		}
		s.logger.Error("failed to add alias", "alias", alias, "error", err)
		return nil, common.InternalErrorf("add alias: %v", err)
	}

	s.reloadIndex(ctx)
	s.logger.Info("alias added", "alias", alias, "vessel_id", vesselID)
	return &schedulespb.AddAliasResponse{Alias: utils.ToPBVesselAlias(a)}, nil
}

func (s *CatalogService) DeleteVessel(ctx context.Context, req *schedulespb.DeleteVesselRequest) (*schedulespb.DeleteVesselResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.catalogRepo.DeleteVessel(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "vessel %s not found", id)
		}
		s.logger.Error("failed to delete vessel", "id", id, "error", err)
		return nil, common.InternalErrorf("delete vessel: %v", err)
	}
	s.reloadIndex(ctx)
	s.logger.Info("vessel deleted", "id", id)
	return &schedulespb.DeleteVesselResponse{}, nil
}

func (s *CatalogService) DeleteAlias(ctx context.Context, req *schedulespb.DeleteAliasRequest) (*schedulespb.DeleteAliasResponse, error) {
	alias := strings.TrimSpace(req.GetAlias())
	if alias == "" {
		return nil, status.Error(codes.InvalidArgument, "alias is required")
	}
	if err := s.catalogRepo.DeleteAlias(ctx, alias); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "alias %q not found", alias)
		}
		s.logger.Error("failed to delete alias", "alias", alias, "error", err)
		return nil, common.InternalErrorf("delete alias: %v", err)
	}
	s.reloadIndex(ctx)
	s.logger.Info("alias deleted", "alias", alias)
	return &schedulespb.DeleteAliasResponse{}, nil
}

// reloadIndex refreshes the resolver's in-memory index after admin writes.
// Best effort: a stale index corrects itself on the next reload.
func (s *CatalogService) reloadIndex(ctx context.Context) {
	if s.resolver == nil {
		return
	}
	if err := s.resolver.Reload(ctx); err != nil {
		s.logger.Warn("resolver reload failed", "error", err)
	}
}
