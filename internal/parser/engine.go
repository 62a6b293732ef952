package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/carrier"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
	"github.com/danuarta/schedules-tracker/internal/temporal"
)

// textSampleLimit bounds the diagnostic sample attached to empty results.
const textSampleLimit = 240

// Request carries one block of recognized text through the engine.
type Request struct {
	Text         string
	CarrierHint  string // explicit carrier override; skips detection
	FilenameHint string // source filename; its prefix can imply the carrier
	Now          time.Time
}

// Engine runs the full extraction pass: profile selection, field extraction,
// temporal normalization, and vessel identity resolution.
type Engine struct {
	logger   *slog.Logger
	registry *carrier.Registry
	resolver *catalog.Resolver
}

func NewEngine(registry *carrier.Registry, resolver *catalog.Resolver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:   logger,
		registry: registry,
		resolver: resolver,
	}
}

// Parse extracts schedule options from recognized text. Zero options is a
// valid result carrying a text sample; ambiguous carrier detection is the
// one selection failure surfaced as an error.
func (e *Engine) Parse(ctx context.Context, req Request) (*entity.ParseResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, common.NewAppError("EMPTY_TEXT", "no text to parse", common.ErrInvalidInput)
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	profile, carrierName, err := e.selectProfile(req)
	if err != nil {
		return nil, err
	}

	e.logger.Info("parse.start",
		"carrier", carrierName, "profile", string(profile.Name()), "text_bytes", len(req.Text))

	matches := profile.Extract(req.Text)
	result := &entity.ParseResult{Carrier: carrierName}

	normalizer := temporal.NewNormalizer(now)
	var writes []catalog.Write

	for _, m := range matches {
		opt := e.buildOption(m, string(profile.Name()), normalizer, &writes)
		result.Options = append(result.Options, opt)
	}

	if e.resolver != nil && len(writes) > 0 {
		if err := e.resolver.Commit(ctx, writes); err != nil {
			// Learning is best effort; the extraction result stands.
			e.logger.Warn("parse.learn.failed", "error", err)
		}
	}

	if !result.HasSchedules() {
		result.TextSample = sampleText(req.Text)
		e.logger.Info("parse.empty", "carrier", carrierName)
	} else {
		e.logger.Info("parse.done", "carrier", carrierName, "options", len(result.Options))
	}
	return result, nil
}

// selectProfile picks the extraction profile: explicit hint, then filename
// prefix, then signature detection, then the generic fallback.
func (e *Engine) selectProfile(req Request) (carrier.Profile, string, error) {
	if hint := strings.TrimSpace(req.CarrierHint); hint != "" {
		return e.profileFor(hint)
	}
	if req.FilenameHint != "" {
		if c, ok := carrier.FromFilename(req.FilenameHint); ok {
			return e.profileFor(string(c))
		}
	}
	p, err := e.registry.Detect(req.Text)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		fb := e.registry.Fallback()
		return fb, string(fb.Name()), nil
	}
	return p, string(p.Name()), nil
}

// profileFor maps a carrier identifier to its profile. A known carrier
// without a dedicated layout extracts generically but keeps its identity.
func (e *Engine) profileFor(name string) (carrier.Profile, string, error) {
	p, err := e.registry.ByName(name)
	if err == nil {
		return p, string(p.Name()), nil
	}
	if errors.Is(err, common.ErrNotFound) {
		c, _ := constants.Canonicalize(name)
		return e.registry.Fallback(), string(c), nil
	}
	return nil, "", err
}

func (e *Engine) buildOption(m carrier.RawFieldMatch, profileName string,
	normalizer *temporal.Normalizer, writes *[]catalog.Write) entity.ScheduleOption {

	opt := entity.ScheduleOption{
		Vessel:  m.Vessel,
		Voyage:  m.Voyage,
		RawETD:  m.ETD,
		RawETA:  m.ETA,
		Profile: profileName,
	}

	if corrected, changed := carrier.CorrectVoyage(m.Voyage); changed {
		opt.Warnings = append(opt.Warnings, entity.Warning{
			Code:    entity.WarnVoyageCorrected,
			Message: fmt.Sprintf("voyage %q corrected to %q", m.Voyage, corrected),
		})
		opt.Voyage = corrected
	}

	opt.Departure = e.parseFragment(normalizer, m.ETD, entity.WarnMissingETD, "departure", &opt)
	opt.Arrival = e.parseFragment(normalizer, m.ETA, entity.WarnMissingETA, "arrival", &opt)

	if d, a, swapped := temporal.OrderPair(opt.Departure, opt.Arrival); swapped {
		opt.Departure, opt.Arrival = d, a
		opt.RawETD, opt.RawETA = opt.RawETA, opt.RawETD
		opt.Warnings = append(opt.Warnings, entity.Warning{
			Code:    entity.WarnSwappedDates,
			Message: "departure was after arrival; dates swapped",
		})
	}

	if e.resolver != nil {
		match, proposed := e.resolver.Resolve(m.Vessel)
		if match.Type != catalog.MatchNone {
			opt.Vessel = match.Vessel
			opt.Resolved = true
			*writes = append(*writes, proposed...)
		} else {
			opt.Warnings = append(opt.Warnings, entity.Warning{
				Code:    entity.WarnUnknownVessel,
				Message: fmt.Sprintf("vessel %q not in catalog", m.Vessel),
			})
		}
	}
	return opt
}

func (e *Engine) parseFragment(normalizer *temporal.Normalizer, fragment, warnCode, label string,
	opt *entity.ScheduleOption) *time.Time {

	if strings.TrimSpace(fragment) == "" {
		opt.Warnings = append(opt.Warnings, entity.Warning{
			Code:    warnCode,
			Message: fmt.Sprintf("no %s fragment found", label),
		})
		return nil
	}
	t, err := normalizer.Parse(fragment)
	if err != nil {
		opt.Warnings = append(opt.Warnings, entity.Warning{
			Code:    warnCode,
			Message: fmt.Sprintf("%s fragment %q not parseable", label, fragment),
		})
		return nil
	}
	return &t
}

// sampleText trims a diagnostic sample from the scanned text, cutting on a
// rune boundary so the sample stays valid UTF-8.
func sampleText(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= textSampleLimit {
		return text
	}
	cut := textSampleLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
