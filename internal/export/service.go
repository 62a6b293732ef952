package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danuarta/schedules-tracker/internal/entity"
)

// Service renders parse results into shareable artifacts: text files for
// email handoff and XLSX workbooks for ops spreadsheets.
type Service struct {
	outputDir string
	logger    *slog.Logger
}

func NewService(outputDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{outputDir: outputDir, logger: logger}
}

// SaveText writes the email rendering of a result under the output
// directory, grouped by carrier when one is known. Returns the file path.
func (s *Service) SaveText(result *entity.ParseResult) (string, error) {
	timestamp := time.Now().Format("2006-01-02_150405")

	dir := s.outputDir
	name := fmt.Sprintf("SCHEDULE_%s.txt", timestamp)
	if result.Carrier != "" {
		dir = filepath.Join(s.outputDir, result.Carrier)
		name = timestamp + ".txt"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var b strings.Builder
	if result.Carrier != "" {
		fmt.Fprintf(&b, "Carrier: %s\n", result.Carrier)
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	b.WriteString(FormatEmail(result.Options))

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	s.logger.Info("export.text.ok", "path", path, "options", len(result.Options))
	return path, nil
}

// SchedulesXLSX returns an XLSX workbook (as bytes) for the given options.
func (s *Service) SchedulesXLSX(result *entity.ParseResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Schedules"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Carrier",
		"Vessel",
		"Voyage",
		"ETD",
		"ETA",
		"Resolved",
		"Warnings",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range result.Options {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, result.Carrier)
		write(2, o.Vessel)
		write(3, o.Voyage)
		write(4, stamp(o.Departure, o.RawETD))
		write(5, stamp(o.Arrival, o.RawETA))
		write(6, o.Resolved)

		var codes []string
		for _, w := range o.Warnings {
			codes = append(codes, w.Code)
		}
		write(7, strings.Join(codes, ", "))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 10)
	_ = f.SetColWidth(sheet, "D", "E", 20)
	_ = f.SetColWidth(sheet, "F", "F", 10)
	_ = f.SetColWidth(sheet, "G", "G", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"carrier", result.Carrier,
		"rows", len(result.Options),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
