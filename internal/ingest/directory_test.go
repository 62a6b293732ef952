package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/internal/carrier"
	"github.com/danuarta/schedules-tracker/internal/export"
	"github.com/danuarta/schedules-tracker/internal/parser"
)

func newTestProcessor(t *testing.T) (*Processor, string) {
	t.Helper()
	outDir := t.TempDir()
	engine := parser.NewEngine(carrier.NewRegistry(), nil, nil)
	return NewProcessor(engine, export.NewService(outDir, nil), nil), outDir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const maerskText = "SPIL NISAKA / 602N\nETD 16 Jan 2026, 19:00\nETA 24 Jan 2026, 22:00\n"

func TestProcessPathExports(t *testing.T) {
	p, outDir := newTestProcessor(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "m_schedule.txt", maerskText)

	require.NoError(t, p.ProcessPath(context.Background(), path, ""))

	// One export file lands under the carrier subdirectory.
	entries, err := os.ReadDir(filepath.Join(outDir, "MAERSK"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(outDir, "MAERSK", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "SPIL NISAKA")
	assert.Contains(t, string(data), "602N")
}

func TestProcessPathNoSchedules(t *testing.T) {
	p, outDir := newTestProcessor(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "m_empty.txt", "Dear customer, no sailings this week.")

	require.NoError(t, p.ProcessPath(context.Background(), path, ""))

	_, err := os.ReadDir(filepath.Join(outDir, "MAERSK"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessDirectory(t *testing.T) {
	p, _ := newTestProcessor(t)
	root := t.TempDir()

	writeFile(t, root, "m_good.txt", maerskText)
	writeFile(t, root, "m_bad.txt", "   ") // blank text fails the parse
	writeFile(t, root, "notes.md", "not an ingest format")
	writeFile(t, root, ".hidden.txt", maerskText)

	results, stats, err := p.ProcessDirectory(context.Background(), root, nil, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(1), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Failed)
	require.Len(t, results, 2)

	byName := map[string]string{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r.Err
	}
	assert.Empty(t, byName["m_good.txt"])
	assert.NotEmpty(t, byName["m_bad.txt"])
}

func TestProcessDirectoryCustomExtensions(t *testing.T) {
	p, _ := newTestProcessor(t)
	root := t.TempDir()

	writeFile(t, root, "m_scan.ocr", maerskText)
	writeFile(t, root, "m_table.csv", maerskText)

	_, stats, err := p.ProcessDirectory(context.Background(), root, []string{".csv"}, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Matched)
}

func TestProcessDirectoryEmptyRoot(t *testing.T) {
	p, _ := newTestProcessor(t)
	_, _, err := p.ProcessDirectory(context.Background(), "  ", nil, false)
	require.Error(t, err)
}
