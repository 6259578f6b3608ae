// Package catalog persists named, versioned schema documents in an
// embedded SQLite database. It is the feed for hot reload: pipelines put
// revised documents here, resolvers load a revision and publish it
// through a graph.Handle.
package catalog

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/internal/logutil"
)

// ErrNotFound is returned when a schema name or version is absent.
var ErrNotFound = errors.New("schema not found")

// Revision describes one stored version of a named schema document.
type Revision struct {
	Version   int64
	Checksum  string
	CreatedAt time.Time
}

// Store is a catalog handle. Safe for concurrent use; versions per name
// are monotonic and never rewritten.
type Store struct {
	db *sql.DB
}

const catalogDDL = `
CREATE TABLE IF NOT EXISTS schema_revisions (
	name TEXT NOT NULL,
	version INTEGER NOT NULL,
	doc TEXT NOT NULL,
	checksum TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (name, version)
);
`

// Open opens or creates a catalog database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(catalogDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	lg := logutil.Logger("catalog")
	lg.Debug().Str("path", path).Msg("catalog opened")
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (st *Store) Close() error {
	return st.db.Close()
}

// Put stores doc as the next version of name and returns that version.
// The document is canonicalized to JSON; its SHA-256 is recorded.
func (st *Store) Put(name string, doc *api.Document) (int64, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("encode document %q: %w", name, err)
	}
	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	tx, err := st.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var current sql.NullInt64
	if err := tx.QueryRow(
		`SELECT MAX(version) FROM schema_revisions WHERE name = ?`, name,
	).Scan(&current); err != nil {
		return 0, err
	}
	next := current.Int64 + 1
	if _, err := tx.Exec(
		`INSERT INTO schema_revisions (name, version, doc, checksum, created_at) VALUES (?, ?, ?, ?, ?)`,
		name, next, string(data), checksum, time.Now().UnixNano(),
	); err != nil {
		return 0, fmt.Errorf("store %q version %d: %w", name, next, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	lg := logutil.Logger("catalog")
	lg.Debug().
		Str("name", name).
		Int64("version", next).
		Str("checksum", checksum).
		Msg("schema revision stored")
	return next, nil
}

// Get returns the latest version of name.
func (st *Store) Get(name string) (*api.Document, int64, error) {
	var raw string
	var version int64
	err := st.db.QueryRow(
		`SELECT doc, version FROM schema_revisions WHERE name = ? ORDER BY version DESC LIMIT 1`, name,
	).Scan(&raw, &version)
	if err == sql.ErrNoRows {
		return nil, 0, fmt.Errorf("schema %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, 0, err
	}
	doc, err := api.DecodeJSON([]byte(raw))
	if err != nil {
		return nil, 0, err
	}
	return doc, version, nil
}

// GetVersion returns one specific stored version of name.
func (st *Store) GetVersion(name string, version int64) (*api.Document, error) {
	var raw string
	err := st.db.QueryRow(
		`SELECT doc FROM schema_revisions WHERE name = ? AND version = ?`, name, version,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schema %q version %d: %w", name, version, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return api.DecodeJSON([]byte(raw))
}

// History returns every revision of name, oldest first.
func (st *Store) History(name string) ([]Revision, error) {
	rows, err := st.db.Query(
		`SELECT version, checksum, created_at FROM schema_revisions WHERE name = ? ORDER BY version ASC`, name,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var revs []Revision
	for rows.Next() {
		var r Revision
		var createdNano int64
		if err := rows.Scan(&r.Version, &r.Checksum, &createdNano); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(0, createdNano)
		revs = append(revs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(revs) == 0 {
		return nil, fmt.Errorf("schema %q: %w", name, ErrNotFound)
	}
	return revs, nil
}

// Names returns every stored schema name, sorted.
func (st *Store) Names() ([]string, error) {
	rows, err := st.db.Query(`SELECT DISTINCT name FROM schema_revisions ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
