package entity

import "time"

// Warning codes attached to parse results and schedule options.
const (
	WarnSwappedDates    = "SWAPPED_DATES"
	WarnMissingETD      = "MISSING_ETD"
	WarnMissingETA      = "MISSING_ETA"
	WarnUnknownVessel   = "UNKNOWN_VESSEL"
	WarnVoyageCorrected = "VOYAGE_CORRECTED"
	WarnSyncConflict    = "SYNC_CONFLICT"
)

// Warning is a non-fatal data-quality note. The remainder of a ParseResult
// stays usable when warnings are present.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ScheduleOption is the canonical output unit: one sailing option extracted
// from a schedule screenshot. Departure/Arrival are nil when the source
// fragment could not be parsed to at least day+month.
type ScheduleOption struct {
	Vessel    string     `json:"vessel"`
	Resolved  bool       `json:"resolved"` // vessel matched the catalog
	Voyage    string     `json:"voyage"`
	Departure *time.Time `json:"etd,omitempty"`
	Arrival   *time.Time `json:"eta,omitempty"`
	RawETD    string     `json:"raw_etd,omitempty"` // source text, weekday hints preserved
	RawETA    string     `json:"raw_eta,omitempty"`
	Profile   string     `json:"profile"` // provenance: which carrier profile produced it
	Warnings  []Warning  `json:"warnings,omitempty"`
}

// ParseResult is the outcome of one extraction pass over a text block.
// An empty Options slice is a valid "no schedule found" result, not an error;
// TextSample then carries a bounded sample of the scanned text for diagnosis.
type ParseResult struct {
	Carrier    string           `json:"carrier"`
	Options    []ScheduleOption `json:"options"`
	Warnings   []Warning        `json:"warnings,omitempty"`
	TextSample string           `json:"text_sample,omitempty"`
}

// HasSchedules reports whether at least one option was extracted.
func (r *ParseResult) HasSchedules() bool {
	return len(r.Options) > 0
}
