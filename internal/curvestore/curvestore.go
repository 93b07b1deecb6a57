// Package curvestore keeps a library of digitized curve sets in a
// SQLite database, loaded and replaced by set name as a whole.
package curvestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/johns/pavecheck/internal/curvefile"
)

// ErrNotFound is returned when a named curve set is not in the library.
var ErrNotFound = errors.New("curve set not found")

const schema = `
CREATE TABLE IF NOT EXISTS curve_sets (
	name       TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS deduct_curves (
	set_name    TEXT NOT NULL REFERENCES curve_sets(name) ON DELETE CASCADE,
	distress    INTEGER NOT NULL,
	severity    TEXT NOT NULL,
	points_json TEXT NOT NULL,
	PRIMARY KEY (set_name, distress, severity)
);
CREATE TABLE IF NOT EXISTS cdv_curves (
	set_name    TEXT NOT NULL REFERENCES curve_sets(name) ON DELETE CASCADE,
	q           INTEGER NOT NULL,
	points_json TEXT NOT NULL,
	PRIMARY KEY (set_name, q)
);
`

// Store is an open curve library.
type Store struct {
	db *sql.DB
}

// SetInfo describes one stored curve set.
type SetInfo struct {
	Name         string
	DeductCurves int
	CDVCurves    int
	CreatedAt    time.Time
}

// Open opens (creating if needed) the library database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create curve db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open curve db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Put stores a curve set, replacing any existing set with the same
// name wholesale. The replace is transactional.
func (s *Store) Put(f *curvefile.File) error {
	if f.Name == "" {
		return fmt.Errorf("curve set name cannot be empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM curve_sets WHERE name = ?`, f.Name); err != nil {
		return fmt.Errorf("replace set: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO curve_sets (name, created_at) VALUES (?, ?)`,
		f.Name, time.Now().Unix()); err != nil {
		return fmt.Errorf("insert set: %w", err)
	}

	for _, d := range f.Deduct {
		pj, err := json.Marshal(d.Points)
		if err != nil {
			return fmt.Errorf("marshal points: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO deduct_curves (set_name, distress, severity, points_json) VALUES (?, ?, ?, ?)`,
			f.Name, d.Distress, d.Severity, string(pj)); err != nil {
			return fmt.Errorf("insert deduct curve: %w", err)
		}
	}

	for _, c := range f.CDV {
		pj, err := json.Marshal(c.Points)
		if err != nil {
			return fmt.Errorf("marshal points: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO cdv_curves (set_name, q, points_json) VALUES (?, ?, ?)`,
			f.Name, c.Q, string(pj)); err != nil {
			return fmt.Errorf("insert cdv curve: %w", err)
		}
	}

	return tx.Commit()
}

// Get loads a stored curve set by name.
func (s *Store) Get(name string) (*curvefile.File, error) {
	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM curve_sets WHERE name = ?`, name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("query set: %w", err)
	}

	f := &curvefile.File{Name: name}

	rows, err := s.db.Query(
		`SELECT distress, severity, points_json FROM deduct_curves WHERE set_name = ? ORDER BY distress, severity`, name)
	if err != nil {
		return nil, fmt.Errorf("query deduct curves: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d curvefile.DeductEntry
		var pj string
		if err := rows.Scan(&d.Distress, &d.Severity, &pj); err != nil {
			return nil, fmt.Errorf("scan deduct curve: %w", err)
		}
		if err := json.Unmarshal([]byte(pj), &d.Points); err != nil {
			return nil, fmt.Errorf("unmarshal points: %w", err)
		}
		f.Deduct = append(f.Deduct, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read deduct curves: %w", err)
	}

	crows, err := s.db.Query(
		`SELECT q, points_json FROM cdv_curves WHERE set_name = ? ORDER BY q`, name)
	if err != nil {
		return nil, fmt.Errorf("query cdv curves: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var c curvefile.CDVEntry
		var pj string
		if err := crows.Scan(&c.Q, &pj); err != nil {
			return nil, fmt.Errorf("scan cdv curve: %w", err)
		}
		if err := json.Unmarshal([]byte(pj), &c.Points); err != nil {
			return nil, fmt.Errorf("unmarshal points: %w", err)
		}
		f.CDV = append(f.CDV, c)
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("read cdv curves: %w", err)
	}

	return f, nil
}

// List reports all stored curve sets in name order.
func (s *Store) List() ([]SetInfo, error) {
	rows, err := s.db.Query(`
		SELECT cs.name, cs.created_at,
		       (SELECT COUNT(*) FROM deduct_curves d WHERE d.set_name = cs.name),
		       (SELECT COUNT(*) FROM cdv_curves c WHERE c.set_name = cs.name)
		FROM curve_sets cs ORDER BY cs.name`)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	var out []SetInfo
	for rows.Next() {
		var info SetInfo
		var created int64
		if err := rows.Scan(&info.Name, &created, &info.DeductCurves, &info.CDVCurves); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		info.CreatedAt = time.Unix(created, 0)
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a stored curve set and its curves.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM curve_sets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
