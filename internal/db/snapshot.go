package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HullPerse/jekafood/internal/app"
	"github.com/HullPerse/jekafood/internal/model"
)

// SnapshotStore persists whole snapshots to SQLite. Entry and preset order
// is kept in the position column.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshotStore migrates and opens the database at path.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	if err := app.EnsureDir(path); err != nil {
		return nil, err
	}
	if err := ApplyMigrations(path); err != nil {
		return nil, err
	}
	sqldb, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &SnapshotStore{db: sqldb}, nil
}

// Load returns nil when nothing has been saved yet.
func (s *SnapshotStore) Load(ctx context.Context) (*model.Snapshot, error) {
	snap := model.EmptySnapshot()
	err := s.db.QueryRowContext(ctx, `SELECT goal FROM store_meta WHERE id = 1`).Scan(&snap.Goal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load goal: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT consumed_at, type, calories FROM food_entries ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load food entries: %w", err)
	}
	for rows.Next() {
		var e model.FoodEntry
		var consumed string
		if err := rows.Scan(&consumed, &e.Type, &e.Calories); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		e.Date, err = time.Parse(time.RFC3339Nano, consumed)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("parse consumed_at %q: %w", consumed, err)
		}
		snap.Food = append(snap.Food, e)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}
	_ = rows.Close()

	presetRows, err := s.db.QueryContext(ctx, `SELECT id, label, icon, calories, value_type FROM presets ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	defer presetRows.Close()
	for presetRows.Next() {
		var p model.Preset
		var valueType string
		if err := presetRows.Scan(&p.ID, &p.Label, &p.Icon, &p.Calories, &valueType); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		p.ValueType = model.ParseValueType(valueType)
		snap.Presets = append(snap.Presets, p)
	}
	if err := presetRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}
	return &snap, nil
}

// Save replaces the stored snapshot in one transaction.
func (s *SnapshotStore) Save(ctx context.Context, snap model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO store_meta(id, goal, saved_at) VALUES(1, ?, ?)
ON CONFLICT(id) DO UPDATE SET goal = excluded.goal, saved_at = excluded.saved_at
`, snap.Goal, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_entries`); err != nil {
		return fmt.Errorf("clear food entries: %w", err)
	}
	for i, e := range snap.Food {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO food_entries(position, consumed_at, type, calories) VALUES(?, ?, ?, ?)`,
			i, e.Date.UTC().Format(time.RFC3339Nano), e.Type, e.Calories,
		); err != nil {
			return fmt.Errorf("save food entry %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM presets`); err != nil {
		return fmt.Errorf("clear presets: %w", err)
	}
	for i, p := range snap.Presets {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO presets(position, id, label, icon, calories, value_type) VALUES(?, ?, ?, ?, ?, ?)`,
			i, p.ID, p.Label, p.Icon, p.Calories, string(p.ValueType),
		); err != nil {
			return fmt.Errorf("save preset %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
