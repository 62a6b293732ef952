package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danuarta/schedules-tracker/gen/ent"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
	"github.com/danuarta/schedules-tracker/internal/utils"
)

// CatalogRepository is the authoritative Postgres-backed vessel catalog.
// It satisfies catalog.Store and adds the admin operations the gRPC
// surface needs.
type CatalogRepository interface {
	catalog.Store
	ListVessels(ctx context.Context) ([]*entity.Vessel, error)
	ListAliases(ctx context.Context, vesselID uuid.UUID) ([]*entity.VesselAlias, error)
	GetVessel(ctx context.Context, id uuid.UUID) (*entity.Vessel, error)
	DeleteVessel(ctx context.Context, id uuid.UUID) error
	DeleteAlias(ctx context.Context, alias string) error
}

type catalogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCatalogRepository(client *ent.Client, logger *slog.Logger) CatalogRepository {
	return &catalogRepository{
		client: client,
		logger: logger,
	}
}

func (r *catalogRepository) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	vessels, err := r.client.Vessel.Query().Order(vessel.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vessels", "error", err)
		return nil, err
	}
	aliases, err := r.client.VesselAlias.Query().Order(vesselalias.ByAlias()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list aliases", "error", err)
		return nil, err
	}

	snap := &catalog.Snapshot{TakenAt: time.Now().UTC()}
	for _, v := range vessels {
		snap.Vessels = append(snap.Vessels, *utils.ToVessel(v))
	}
	for _, a := range aliases {
		snap.Aliases = append(snap.Aliases, *utils.ToVesselAlias(a))
	}
	return snap, nil
}

func (r *catalogRepository) InsertVessel(ctx context.Context, v *entity.Vessel) error {
	builder := r.client.Vessel.Create().
		SetName(v.Name).
		SetNillableCarrier(v.Carrier).
		SetIsActive(v.IsActive)
	if v.ID != uuid.Nil {
		builder = builder.SetID(v.ID)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return common.NewAppError("VESSEL_EXISTS",
				fmt.Sprintf("vessel %q already present", v.Name), common.ErrSyncConflict)
		}
		r.logger.Error("failed to insert vessel", "name", v.Name, "error", err)
		return err
	}
	v.ID = created.ID
	v.CreatedAt = created.CreatedAt
	v.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *catalogRepository) InsertAlias(ctx context.Context, a *entity.VesselAlias) error {
	builder := r.client.VesselAlias.Create().
		SetVesselID(a.VesselID).
		SetAlias(a.Alias).
		SetSource(a.Source).
		SetConfidence(a.Confidence).
		SetUsageCount(a.UsageCount).
		SetNillableLastUsedAt(a.LastUsedAt)
	if a.ID != uuid.Nil {
		builder = builder.SetID(a.ID)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return common.NewAppError("ALIAS_EXISTS",
				fmt.Sprintf("alias %q already present", a.Alias), common.ErrSyncConflict)
		}
		r.logger.Error("failed to insert alias", "alias", a.Alias, "error", err)
		return err
	}
	a.ID = created.ID
	a.CreatedAt = created.CreatedAt
	a.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *catalogRepository) TouchAlias(ctx context.Context, alias string) error {
	now := time.Now().UTC()
	n, err := r.client.VesselAlias.Update().
		Where(vesselalias.AliasEqualFold(alias)).
		AddUsageCount(1).
		SetLastUsedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to touch alias", "alias", alias, "error", err)
		return err
	}
	if n == 0 {
		return common.NewAppError("ALIAS_MISSING",
			fmt.Sprintf("alias %q not present", alias), common.ErrNotFound)
	}
	return nil
}

// Replace swaps the full catalog contents inside one transaction. Used when
// restoring the authoritative store from a trusted snapshot.
func (r *catalogRepository) Replace(ctx context.Context, snap *catalog.Snapshot) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.VesselAlias.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear aliases: %w", err)
	}
	if _, err := tx.Vessel.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear vessels: %w", err)
	}
	for i := range snap.Vessels {
		v := &snap.Vessels[i]
		if _, err := tx.Vessel.Create().
			SetID(v.ID).
			SetName(v.Name).
			SetNillableCarrier(v.Carrier).
			SetIsActive(v.IsActive).
			Save(ctx); err != nil {
			return fmt.Errorf("replace vessel %q: %w", v.Name, err)
		}
	}
	for i := range snap.Aliases {
		a := &snap.Aliases[i]
		if _, err := tx.VesselAlias.Create().
			SetID(a.ID).
			SetVesselID(a.VesselID).
			SetAlias(a.Alias).
			SetSource(a.Source).
			SetConfidence(a.Confidence).
			SetUsageCount(a.UsageCount).
			SetNillableLastUsedAt(a.LastUsedAt).
			Save(ctx); err != nil {
			return fmt.Errorf("replace alias %q: %w", a.Alias, err)
		}
	}
	return tx.Commit()
}

func (r *catalogRepository) ListVessels(ctx context.Context) ([]*entity.Vessel, error) {
	vessels, err := r.client.Vessel.Query().Order(vessel.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vessels", "error", err)
		return nil, err
	}
	result := make([]*entity.Vessel, len(vessels))
	for i, v := range vessels {
		result[i] = utils.ToVessel(v)
	}
	return result, nil
}

func (r *catalogRepository) ListAliases(ctx context.Context, vesselID uuid.UUID) ([]*entity.VesselAlias, error) {
	aliases, err := r.client.VesselAlias.Query().
		Where(vesselalias.VesselID(vesselID)).
		Order(vesselalias.ByAlias()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list aliases", "vessel_id", vesselID, "error", err)
		return nil, err
	}
	result := make([]*entity.VesselAlias, len(aliases))
	for i, a := range aliases {
		result[i] = utils.ToVesselAlias(a)
	}
	return result, nil
}

func (r *catalogRepository) GetVessel(ctx context.Context, id uuid.UUID) (*entity.Vessel, error) {
	v, err := r.client.Vessel.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("VESSEL_MISSING",
				fmt.Sprintf("vessel %s not present", id), common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToVessel(v), nil
}

// DeleteVessel removes the vessel and, through the schema cascade, every
// alias attached to it.
func (r *catalogRepository) DeleteVessel(ctx context.Context, id uuid.UUID) error {
	err := r.client.Vessel.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("VESSEL_MISSING",
				fmt.Sprintf("vessel %s not present", id), common.ErrNotFound)
		}
		r.logger.Error("failed to delete vessel", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *catalogRepository) DeleteAlias(ctx context.Context, alias string) error {
	n, err := r.client.VesselAlias.Delete().
		Where(vesselalias.AliasEqualFold(alias)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete alias", "alias", alias, "error", err)
		return err
	}
	if n == 0 {
		return common.NewAppError("ALIAS_MISSING",
			fmt.Sprintf("alias %q not present", alias), common.ErrNotFound)
	}
	return nil
}
