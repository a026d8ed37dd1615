// Package sqlite implements the record store on an embedded SQLite
// database, letting snapshots persist between runs without an external
// service.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/okian/namepulse/internal/adapters/repository/sqlite/migrations"
	"github.com/okian/namepulse/internal/domain/model"
)

// Store is a SQLite-backed snapshot store. It satisfies
// repository.Store for reads and adds write methods used by ingestion.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the snapshot database at dataDir. If dataDir
// is empty it defaults to ~/.namepulse/data/snapshot.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".namepulse", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "snapshot.db")

	// WAL mode keeps readers unblocked while ingestion writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies embedded SQL files in lexical order.
func (s *Store) migrate(fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}
	return nil
}

// ReplaceSnapshot atomically swaps the stored timeline and records for a new
// snapshot.
func (s *Store) ReplaceSnapshot(ctx context.Context, decades []string, records []model.NameRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM name_records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM decades`); err != nil {
		return fmt.Errorf("clearing decades: %w", err)
	}

	for i, d := range decades {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO decades (position, decade) VALUES (?, ?)`, i, d); err != nil {
			return fmt.Errorf("inserting decade %q: %w", d, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO name_records (decade, gender, rank, name, count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Decade, string(r.Gender), r.Rank, r.Name, r.Count); err != nil {
			return fmt.Errorf("inserting record %s/%s/%d: %w", r.Decade, r.Gender, r.Rank, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// All returns every stored record ordered by decade position, gender, rank.
func (s *Store) All(ctx context.Context) ([]model.NameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.decade, r.gender, r.rank, r.name, r.count
		FROM name_records r
		JOIN decades d ON d.decade = r.decade
		ORDER BY d.position, r.gender, r.rank`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Cohort returns one (decade, gender) cohort ordered by rank. Unknown
// decades yield an empty slice.
func (s *Store) Cohort(ctx context.Context, decade string, gender model.Gender) ([]model.NameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT decade, gender, rank, name, count
		FROM name_records
		WHERE decade = ? AND gender = ?
		ORDER BY rank`, decade, string(gender))
	if err != nil {
		return nil, fmt.Errorf("querying cohort %s/%s: %w", decade, gender, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Timeline returns the stored decade sequence in position order.
func (s *Store) Timeline(ctx context.Context) (*model.Timeline, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT decade FROM decades ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying decades: %w", err)
	}
	defer rows.Close()

	var decades []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning decade: %w", err)
		}
		decades = append(decades, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decades: %w", err)
	}
	return model.NewTimeline(decades), nil
}

func scanRecords(rows *sql.Rows) ([]model.NameRecord, error) {
	var out []model.NameRecord
	for rows.Next() {
		var r model.NameRecord
		var gender string
		if err := rows.Scan(&r.Decade, &gender, &r.Rank, &r.Name, &r.Count); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		r.Gender = model.Gender(gender)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return out, nil
}
