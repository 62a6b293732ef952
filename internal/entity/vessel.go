package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vessel represents a canonical vessel identity for data transfer between layers.
type Vessel struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Carrier   *string   `json:"carrier,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VesselAlias represents a known alternate spelling of a vessel name,
// typically arising from recognition noise. Alias text is unique across the
// whole catalog, not just per vessel.
type VesselAlias struct {
	ID         uuid.UUID  `json:"id"`
	VesselID   uuid.UUID  `json:"vessel_id"`
	Alias      string     `json:"alias"`
	Source     string     `json:"source"`
	Confidence float64    `json:"confidence"`
	UsageCount int        `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
