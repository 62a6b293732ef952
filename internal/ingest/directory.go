package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

type FileResult struct {
	Path string
	Err  string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// ProcessDirectory walks root, filters by includeExts (or the defaults),
// skips hidden entries if requested, and processes each file. Returns
// per-file results plus aggregate stats. One-shot batch mode for the CLI.
func (p *Processor) ProcessDirectory(ctx context.Context, root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = defaultExts()
	} else {
		for _, e := range includeExts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedPath(path, exts) {
			return nil
		}
		stats.Matched++

		if err := p.ProcessPath(ctx, path, ""); err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, FileResult{Path: path})
		stats.Succeeded++
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
