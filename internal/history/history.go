// Package history keeps a local record of past validation runs in a SQLite
// database, so "extcheck history" can show when the project tree last
// validated and what broke it. Recording is best-effort: the caller logs a
// failure to stderr and moves on.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cnwenf/tify/internal/paths"
	"github.com/cnwenf/tify/internal/validate"

	_ "modernc.org/sqlite"
)

// Entry is one recorded validation run.
type Entry struct {
	Time       time.Time
	Root       string
	ManifestOK bool
	FilesOK    bool
	Missing    int
}

// OK reports whether the recorded run validated overall.
func (e Entry) OK() bool {
	return e.ManifestOK && e.FilesOK
}

// Store is a SQLite-backed run log.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the run database at path, creating the schema on
// first use.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    root        TEXT    NOT NULL DEFAULT '',
    manifest_ok INTEGER NOT NULL DEFAULT 0,
    files_ok    INTEGER NOT NULL DEFAULT 0,
    missing     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record stores the outcome of one validation run against root.
func (s *Store) Record(root string, sum validate.Summary) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (timestamp, root, manifest_ok, files_ok, missing) VALUES (?, ?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339), root,
		boolInt(sum.ManifestOK), boolInt(sum.FilesOK), sum.Missing,
	)
	return err
}

// Entries returns the most recent n runs, oldest first. n <= 0 returns all.
func (s *Store) Entries(n int) ([]Entry, error) {
	query := `SELECT timestamp, root, manifest_ok, files_ok, missing FROM runs ORDER BY id DESC`
	var args []any
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var tsStr, root string
		var manifestOK, filesOK, missing int
		if err := rows.Scan(&tsStr, &root, &manifestOK, &filesOK, &missing); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "history: skipping entry with bad timestamp %q: %v\n", tsStr, err)
			continue
		}
		entries = append(entries, Entry{
			Time:       ts,
			Root:       root,
			ManifestOK: manifestOK != 0,
			FilesOK:    filesOK != 0,
			Missing:    missing,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to oldest-first for printing.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Clean removes runs older than days and returns the removed count.
func (s *Store) Clean(days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Clear closes the store and deletes the database file.
func (s *Store) Clear() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	// WAL sidecar files, best-effort.
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
