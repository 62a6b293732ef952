package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/export"
	"github.com/danuarta/schedules-tracker/internal/parser"
)

// Processor handles one dropped text file end to end: read, parse, export.
// It is the unit the async queue runs per job.
type Processor struct {
	engine   *parser.Engine
	exporter *export.Service
	logger   *slog.Logger
}

func NewProcessor(engine *parser.Engine, exporter *export.Service, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{engine: engine, exporter: exporter, logger: logger}
}

// ProcessPath reads the file, parses it, and writes the text export. The
// filename doubles as the carrier hint via the prefix convention; a hint
// carried on the context backs up an empty argument.
func (p *Processor) ProcessPath(ctx context.Context, path, carrierHint string) error {
	if carrierHint == "" {
		carrierHint = common.CarrierHintFromContext(ctx)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	result, err := p.engine.Parse(ctx, parser.Request{
		Text:         string(data),
		CarrierHint:  carrierHint,
		FilenameHint: filepath.Base(path),
	})
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if !result.HasSchedules() {
		p.logger.Warn("ingest.no_schedules",
			"path", path, "carrier", result.Carrier,
			"request_id", common.RequestIDFromContext(ctx))
		return nil
	}

	if p.exporter != nil {
		if _, err := p.exporter.SaveText(result); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
	}
	return nil
}
