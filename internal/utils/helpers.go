package utils

import (
	"time"

	"github.com/danuarta/schedules-tracker/gen/ent"
	schedulespb "github.com/danuarta/schedules-tracker/gen/proto/schedules/v1"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToVessel(e *ent.Vessel) *entity.Vessel {
	return &entity.Vessel{
		ID:        e.ID,
		Name:      e.Name,
		Carrier:   e.Carrier,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToVesselAlias(e *ent.VesselAlias) *entity.VesselAlias {
	return &entity.VesselAlias{
		ID:         e.ID,
		VesselID:   e.VesselID,
		Alias:      e.Alias,
		Source:     e.Source,
		Confidence: e.Confidence,
		UsageCount: e.UsageCount,
		LastUsedAt: e.LastUsedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToPBVessel(v *entity.Vessel) *schedulespb.Vessel {
	return &schedulespb.Vessel{
		Id:        v.ID.String(),
		Name:      v.Name,
		Carrier:   strOrEmpty(v.Carrier),
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVesselAlias(a *entity.VesselAlias) *schedulespb.VesselAlias {
	return &schedulespb.VesselAlias{
		Id:         a.ID.String(),
		VesselId:   a.VesselID.String(),
		Alias:      a.Alias,
		Source:     a.Source,
		Confidence: a.Confidence,
		UsageCount: int32(a.UsageCount),
		LastUsedAt: timeOrEmpty(a.LastUsedAt),
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBWarnings(ws []entity.Warning) []*schedulespb.Warning {
	out := make([]*schedulespb.Warning, 0, len(ws))
	for _, w := range ws {
		out = append(out, &schedulespb.Warning{Code: w.Code, Message: w.Message})
	}
	return out
}

func ToPBScheduleOption(o *entity.ScheduleOption) *schedulespb.ScheduleOption {
	return &schedulespb.ScheduleOption{
		Vessel:    o.Vessel,
		Resolved:  o.Resolved,
		Voyage:    o.Voyage,
		Departure: timeOrEmpty(o.Departure),
		Arrival:   timeOrEmpty(o.Arrival),
		RawEtd:    o.RawETD,
		RawEta:    o.RawETA,
		Profile:   o.Profile,
		Warnings:  ToPBWarnings(o.Warnings),
	}
}

func ToPBParseResult(r *entity.ParseResult) *schedulespb.ParseTextResponse {
	resp := &schedulespb.ParseTextResponse{
		Carrier:    r.Carrier,
		Warnings:   ToPBWarnings(r.Warnings),
		TextSample: r.TextSample,
	}
	for i := range r.Options {
		resp.Options = append(resp.Options, ToPBScheduleOption(&r.Options[i]))
	}
	return resp
}
