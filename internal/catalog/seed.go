package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

// seedSchema constrains the seed file shape before any row touches a store.
const seedSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"carrier": {"type": "string"},
			"aliases": {
				"type": "array",
				"items": {"type": "string", "minLength": 1}
			}
		},
		"additionalProperties": false
	}
}`

type seedVessel struct {
	Name    string   `json:"name"`
	Carrier string   `json:"carrier,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

// SeedStats summarizes one seed import.
type SeedStats struct {
	Vessels int
	Aliases int
	Skipped int
}

// SeedFromFile loads a JSON vessel seed into store. Rows already present are
// skipped, so re-running a seed against a populated store is harmless.
// Imported aliases carry the "imported" source tag.
func SeedFromFile(ctx context.Context, store Store, path string, logger *slog.Logger) (*SeedStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	if err := validateSeed(data); err != nil {
		return nil, common.NewAppError("SEED_INVALID", err.Error(), common.ErrInvalidInput)
	}

	var seeds []seedVessel
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}

	stats := &SeedStats{}
	for _, sv := range seeds {
		name := strings.ToUpper(strings.TrimSpace(sv.Name))
		if name == "" {
			stats.Skipped++
			continue
		}
		v := entity.Vessel{
			ID:       uuid.New(),
			Name:     name,
			IsActive: true,
		}
		if sv.Carrier != "" {
			if carrier, ok := constants.Canonicalize(sv.Carrier); ok {
				c := string(carrier)
				v.Carrier = &c
			}
		}
		vesselID := v.ID
		if err := store.InsertVessel(ctx, &v); err != nil {
			if !common.IsConflict(err) {
				return stats, fmt.Errorf("seed vessel %q: %w", name, err)
			}
			stats.Skipped++
			snap, serr := store.Snapshot(ctx)
			if serr != nil {
				return stats, fmt.Errorf("snapshot for seed remap: %w", serr)
			}
			existing, found := snap.VesselByName(name)
			if !found {
				continue
			}
			vesselID = existing.ID
		} else {
			stats.Vessels++
		}

		for _, alias := range sv.Aliases {
			alias = strings.ToUpper(strings.TrimSpace(alias))
			if alias == "" || alias == name {
				continue
			}
			a := entity.VesselAlias{
				ID:         uuid.New(),
				VesselID:   vesselID,
				Alias:      alias,
				Source:     string(constants.AliasSourceImported),
				Confidence: 1.0,
			}
			if err := store.InsertAlias(ctx, &a); err != nil {
				if common.IsConflict(err) {
					stats.Skipped++
					continue
				}
				return stats, fmt.Errorf("seed alias %q: %w", alias, err)
			}
			stats.Aliases++
		}
	}

	logger.Info("catalog.seed.done",
		"path", path, "vessels", stats.Vessels, "aliases", stats.Aliases, "skipped", stats.Skipped)
	return stats, nil
}

func validateSeed(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("seed.json", bytes.NewReader([]byte(seedSchema))); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("seed.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("seed is not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("seed does not match schema: %w", err)
	}
	return nil
}
