// Package decisionlog is an optional, external append-only audit trail of
// CLI-driven decisions. It is not the core's §4.G result cache — that
// cache is in-process and single-entry. This is the kind of persisted
// state the arbitration core itself deliberately has none of.
package decisionlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/refreshrate/selector/internal/refreshrate"
)

// DB wraps a WAL-mode SQLite connection holding the decision history.
type DB struct {
	db *sql.DB
}

// Open creates or opens the decision log at dir/decisions.db.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("decisionlog: create data dir: %w", err)
	}

	dsn := filepath.Join(dir, "decisions.db") + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("decisionlog: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("decisionlog: ping sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("decisionlog: migrate: %w", err)
	}
	return d, nil
}

// Close shuts the database down cleanly.
func (d *DB) Close() error { return d.db.Close() }

func (d *DB) migrate() error {
	_, err := d.db.Exec(`CREATE TABLE IF NOT EXISTS decisions (
		id               TEXT PRIMARY KEY,
		at               INTEGER NOT NULL,
		layers_json      TEXT NOT NULL,
		touch            BOOLEAN NOT NULL,
		idle             BOOLEAN NOT NULL,
		chosen_mode_id   INTEGER NOT NULL,
		chosen_hz        REAL NOT NULL,
		touch_considered BOOLEAN NOT NULL,
		idle_considered  BOOLEAN NOT NULL
	)`)
	return err
}

// Record appends one GetBestRefreshRate call's inputs and outputs.
func (d *DB) Record(layers []refreshrate.LayerRequirement, signals refreshrate.GlobalSignals, chosen refreshrate.DisplayMode, considered refreshrate.GlobalSignals, at time.Time) error {
	layersJSON, err := json.Marshal(layers)
	if err != nil {
		return fmt.Errorf("decisionlog: marshal layers: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO decisions (id, at, layers_json, touch, idle, chosen_mode_id, chosen_hz, touch_considered, idle_considered)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), at.Unix(), string(layersJSON),
		signals.Touch, signals.Idle,
		int(chosen.ID), chosen.RefreshRate.Hz(),
		considered.Touch, considered.Idle,
	)
	if err != nil {
		return fmt.Errorf("decisionlog: insert: %w", err)
	}
	return nil
}

// Decision is one row read back by the `refreshratectl history` command.
type Decision struct {
	ID              string
	At              time.Time
	ChosenModeID    int
	ChosenHz        float64
	Touch           bool
	Idle            bool
	TouchConsidered bool
	IdleConsidered  bool
}

// Recent returns the most recent limit decisions, newest first.
func (d *DB) Recent(limit int) ([]Decision, error) {
	rows, err := d.db.Query(
		`SELECT id, at, chosen_mode_id, chosen_hz, touch, idle, touch_considered, idle_considered
		 FROM decisions ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("decisionlog: query: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var dec Decision
		var at int64
		if err := rows.Scan(&dec.ID, &at, &dec.ChosenModeID, &dec.ChosenHz, &dec.Touch, &dec.Idle, &dec.TouchConsidered, &dec.IdleConsidered); err != nil {
			return nil, fmt.Errorf("decisionlog: scan: %w", err)
		}
		dec.At = time.Unix(at, 0).UTC()
		out = append(out, dec)
	}
	return out, rows.Err()
}
