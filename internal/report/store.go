// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"code.hybscloud.com/ringq/internal/bench"
)

//go:embed schema.sql
var schemaSQL string

// Store keeps a history of benchmark runs in a SQLite database,
// so results from different machines or revisions can be compared.
type Store struct {
	conn *sql.DB
}

// OpenStore opens (creating if necessary) the history database and
// applies the schema.
func OpenStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("report: creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("report: opening database: %w", err)
	}

	// WAL mode keeps readers usable while a run is being appended.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("report: enabling WAL mode: %w", err)
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("report: executing schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Insert appends one result to the history.
func (s *Store) Insert(r bench.Result) error {
	const query = `INSERT INTO runs (id, name, capacity, iterations, elapsed_ns, ops_per_sec, started_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.conn.Exec(query,
		r.ID, r.Name, r.Capacity, r.Iterations,
		r.Elapsed.Nanoseconds(), r.OpsPerSec, r.StartedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("report: inserting run %s: %w", r.ID, err)
	}
	return nil
}

// Recent returns up to limit results for the named case, newest first.
func (s *Store) Recent(name string, limit int) ([]bench.Result, error) {
	const query = `SELECT id, name, capacity, iterations, elapsed_ns, ops_per_sec, started_at
FROM runs WHERE name = ? ORDER BY started_at DESC LIMIT ?`
	rows, err := s.conn.Query(query, name, limit)
	if err != nil {
		return nil, fmt.Errorf("report: querying runs: %w", err)
	}
	defer rows.Close()

	var results []bench.Result
	for rows.Next() {
		var r bench.Result
		var elapsedNS int64
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Name, &r.Capacity, &r.Iterations,
			&elapsedNS, &r.OpsPerSec, &startedAt); err != nil {
			return nil, fmt.Errorf("report: scanning run: %w", err)
		}
		r.Elapsed = time.Duration(elapsedNS)
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			r.StartedAt = t
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report: iterating runs: %w", err)
	}
	return results, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}
