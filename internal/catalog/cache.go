package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

// Cache is the local, offline-capable catalog copy backed by a SQLite file.
// It is the store the resolver mutates during offline operation. Writes are
// serialized behind a single mutex so concurrent resolver commits cannot
// lose usage-counter updates.
type Cache struct {
	db     *sql.DB
	logger *slog.Logger
	mu     sync.Mutex // serializes the append/update path
}

// OpenCache opens (creating if needed) the SQLite cache at path.
func OpenCache(path string, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	c := &Cache{db: db, logger: logger}
	if err := c.initDB(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	logger.Info("catalog.cache.opened", "path", path)
	return c, nil
}

func (c *Cache) initDB() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS vessels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			carrier TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS vessel_aliases (
			id TEXT PRIMARY KEY,
			vessel_id TEXT NOT NULL,
			alias TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			confidence REAL NOT NULL DEFAULT 1.0,
			usage_count INTEGER NOT NULL DEFAULT 0,
			last_used_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY (vessel_id) REFERENCES vessels(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_aliases_vessel_id ON vessel_aliases(vessel_id);
	`)
	return err
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Snapshot reads the full cache contents.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: time.Now().UTC()}

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, carrier, is_active, created_at, updated_at FROM vessels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query vessels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			v       entity.Vessel
			id      string
			carrier sql.NullString
			created string
			updated string
		)
		if err := rows.Scan(&id, &v.Name, &carrier, &v.IsActive, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan vessel: %w", err)
		}
		v.ID, _ = uuid.Parse(id)
		if carrier.Valid {
			v.Carrier = &carrier.String
		}
		v.CreatedAt = parseTime(created)
		v.UpdatedAt = parseTime(updated)
		snap.Vessels = append(snap.Vessels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	arows, err := c.db.QueryContext(ctx,
		`SELECT id, vessel_id, alias, source, confidence, usage_count, last_used_at, created_at, updated_at
		 FROM vessel_aliases ORDER BY alias`)
	if err != nil {
		return nil, fmt.Errorf("query aliases: %w", err)
	}
	defer arows.Close()
	for arows.Next() {
		var (
			a        entity.VesselAlias
			id       string
			vesselID string
			lastUsed sql.NullString
			created  string
			updated  string
		)
		if err := arows.Scan(&id, &vesselID, &a.Alias, &a.Source, &a.Confidence,
			&a.UsageCount, &lastUsed, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		a.ID, _ = uuid.Parse(id)
		a.VesselID, _ = uuid.Parse(vesselID)
		if lastUsed.Valid {
			t := parseTime(lastUsed.String)
			a.LastUsedAt = &t
		}
		a.CreatedAt = parseTime(created)
		a.UpdatedAt = parseTime(updated)
		snap.Aliases = append(snap.Aliases, a)
	}
	return snap, arows.Err()
}

// InsertVessel adds a vessel row. Name collisions map to ErrSyncConflict.
func (c *Cache) InsertVessel(ctx context.Context, v *entity.Vessel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	var carrier any
	if v.Carrier != nil {
		carrier = *v.Carrier
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO vessels (id, name, carrier, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID.String(), v.Name, carrier, v.IsActive,
		v.CreatedAt.Format(time.RFC3339), v.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return common.NewAppError("VESSEL_EXISTS",
				fmt.Sprintf("vessel %q already present", v.Name), common.ErrSyncConflict)
		}
		return fmt.Errorf("insert vessel %q: %w", v.Name, err)
	}
	return nil
}

// InsertAlias adds an alias row. Alias-text collisions map to ErrSyncConflict.
func (c *Cache) InsertAlias(ctx context.Context, a *entity.VesselAlias) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	var lastUsed any
	if a.LastUsedAt != nil {
		lastUsed = a.LastUsedAt.Format(time.RFC3339)
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO vessel_aliases
		 (id, vessel_id, alias, source, confidence, usage_count, last_used_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.VesselID.String(), a.Alias, a.Source, a.Confidence,
		a.UsageCount, lastUsed,
		a.CreatedAt.Format(time.RFC3339), a.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return common.NewAppError("ALIAS_EXISTS",
				fmt.Sprintf("alias %q already present", a.Alias), common.ErrSyncConflict)
		}
		return fmt.Errorf("insert alias %q: %w", a.Alias, err)
	}
	return nil
}

// TouchAlias bumps the usage counter and last-used time of an alias.
func (c *Cache) TouchAlias(ctx context.Context, alias string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := c.db.ExecContext(ctx,
		`UPDATE vessel_aliases
		 SET usage_count = usage_count + 1, last_used_at = ?, updated_at = ?
		 WHERE alias = ? COLLATE NOCASE`,
		now, now, alias)
	if err != nil {
		return fmt.Errorf("touch alias %q: %w", alias, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.NewAppError("ALIAS_MISSING",
			fmt.Sprintf("alias %q not present", alias), common.ErrNotFound)
	}
	return nil
}

// Replace destructively swaps the cache contents for the snapshot in one
// transaction: the destructive pull. Callers push first if local learning
// matters.
func (c *Cache) Replace(ctx context.Context, snap *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vessel_aliases`); err != nil {
		return fmt.Errorf("clear aliases: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vessels`); err != nil {
		return fmt.Errorf("clear vessels: %w", err)
	}

	for i := range snap.Vessels {
		v := &snap.Vessels[i]
		var carrier any
		if v.Carrier != nil {
			carrier = *v.Carrier
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vessels (id, name, carrier, is_active, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			v.ID.String(), v.Name, carrier, v.IsActive,
			v.CreatedAt.Format(time.RFC3339), v.UpdatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("replace vessel %q: %w", v.Name, err)
		}
	}
	for i := range snap.Aliases {
		a := &snap.Aliases[i]
		var lastUsed any
		if a.LastUsedAt != nil {
			lastUsed = a.LastUsedAt.Format(time.RFC3339)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vessel_aliases
			 (id, vessel_id, alias, source, confidence, usage_count, last_used_at, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID.String(), a.VesselID.String(), a.Alias, a.Source, a.Confidence,
			a.UsageCount, lastUsed,
			a.CreatedAt.Format(time.RFC3339), a.UpdatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("replace alias %q: %w", a.Alias, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	c.logger.Info("catalog.cache.replaced", "vessels", len(snap.Vessels), "aliases", len(snap.Aliases))
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
