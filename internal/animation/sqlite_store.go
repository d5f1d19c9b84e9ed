package animation

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"frame-sequencer/internal/sequence"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS animations (
	id          TEXT PRIMARY KEY,
	frame_path  TEXT NOT NULL,
	frame_count INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);`

// SQLiteStore is a Store backed by an SQLite database.
// Only the inputs of each animation are persisted; descriptors are derived
// again with sequence.Parse when rows are loaded.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and writes serialised.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite store: %s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get implements Store.Get.
func (s *SQLiteStore) Get(id AnimationID) (Animation, bool, error) {
	var (
		framePath  string
		frameCount int
		createdAt  string
	)
	err := s.db.QueryRow(
		`SELECT frame_path, frame_count, created_at FROM animations WHERE id = ?`, string(id),
	).Scan(&framePath, &frameCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Animation{}, false, nil
	}
	if err != nil {
		return Animation{}, false, fmt.Errorf("sqlite store: get %s: %w", id, err)
	}

	d, err := sequence.Parse(framePath, frameCount)
	if err != nil {
		return Animation{}, false, fmt.Errorf("sqlite store: stored animation %s: %w", id, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Animation{}, false, fmt.Errorf("sqlite store: created_at of %s: %w", id, err)
	}

	return Animation{ID: id, FramePath: framePath, Descriptor: d, CreatedAt: ts}, true, nil
}

// Put implements Store.Put. An existing animation with the same ID is replaced.
func (s *SQLiteStore) Put(a Animation) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO animations (id, frame_path, frame_count, created_at) VALUES (?, ?, ?, ?)`,
		string(a.ID), a.FramePath, a.Descriptor.FrameCount, a.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite store: put %s: %w", a.ID, err)
	}
	return nil
}

// Delete implements Store.Delete.
func (s *SQLiteStore) Delete(id AnimationID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM animations WHERE id = ?`, string(id))
	if err != nil {
		return false, fmt.Errorf("sqlite store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlite store: delete %s: %w", id, err)
	}
	return n > 0, nil
}

// List implements Store.List. IDs are returned in ascending order.
func (s *SQLiteStore) List() ([]AnimationID, error) {
	rows, err := s.db.Query(`SELECT id FROM animations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: list: %w", err)
	}
	defer rows.Close()

	var ids []AnimationID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlite store: list: %w", err)
		}
		ids = append(ids, AnimationID(id))
	}
	return ids, rows.Err()
}
