// Package savestore persists save.MissionSaveState blobs to a local
// sqlite database, keyed by mission id and slot, for cmd/missionrun to
// resume a run across process restarts.
package savestore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps a sqlite-backed save-slot table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures the save-slot table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("savestore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("savestore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS mission_save (
	mission    TEXT NOT NULL,
	slot       TEXT NOT NULL,
	tick       INTEGER NOT NULL,
	state_json BLOB NOT NULL,
	PRIMARY KEY (mission, slot)
);
`

// Put stores (or overwrites) the save state for (mission, slot).
func (s *Store) Put(mission, slot string, tick int32, stateJSON []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO mission_save (mission, slot, tick, state_json) VALUES (?, ?, ?, ?)
		 ON CONFLICT(mission, slot) DO UPDATE SET tick = excluded.tick, state_json = excluded.state_json`,
		mission, slot, tick, stateJSON,
	)
	if err != nil {
		return fmt.Errorf("savestore: put %s/%s: %w", mission, slot, err)
	}
	return nil
}

// Get retrieves the save state for (mission, slot). ok is false if no
// row exists.
func (s *Store) Get(mission, slot string) (tick int32, stateJSON []byte, ok bool, err error) {
	row := s.db.QueryRow(
		`SELECT tick, state_json FROM mission_save WHERE mission = ? AND slot = ?`,
		mission, slot,
	)
	if err = row.Scan(&tick, &stateJSON); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil, false, nil
		}
		return 0, nil, false, fmt.Errorf("savestore: get %s/%s: %w", mission, slot, err)
	}
	return tick, stateJSON, true, nil
}

// Delete removes the save state for (mission, slot), if any.
func (s *Store) Delete(mission, slot string) error {
	_, err := s.db.Exec(`DELETE FROM mission_save WHERE mission = ? AND slot = ?`, mission, slot)
	if err != nil {
		return fmt.Errorf("savestore: delete %s/%s: %w", mission, slot, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
