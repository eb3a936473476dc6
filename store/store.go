// Package store keeps a ledger of solved puzzle inputs in SQLite.
//
// Inputs are keyed by the SHA-256 of their text, so re-running a known input
// can be checked against the answers recorded the first time.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var (
	// ErrEmptyPath indicates Open was called without a database path.
	ErrEmptyPath = errors.New("store: empty db path")
	// ErrNotFound indicates no entry for a digest.
	ErrNotFound = errors.New("store: no entry for input")
)

// Entry is one recorded solve.
type Entry struct {
	Digest     string
	Flat       int
	Cube       int
	FaceSize   int
	RecordedAt time.Time
}

// Ledger is an answer ledger backed by a SQLite file.
type Ledger struct {
	db *sql.DB
}

// Digest returns the ledger key for a puzzle input.
func Digest(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Open opens or creates the ledger at path.
func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Ledger{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("store: %s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS answers (
		digest      TEXT PRIMARY KEY,
		flat        INTEGER NOT NULL,
		cube        INTEGER NOT NULL,
		face_size   INTEGER NOT NULL,
		recorded_at TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("store: schema: %w", err)
	}
	return nil
}

// Lookup returns the entry for digest, or ErrNotFound.
func (l *Ledger) Lookup(ctx context.Context, digest string) (Entry, error) {
	var (
		e  Entry
		at string
	)
	err := l.db.QueryRowContext(ctx,
		`SELECT digest, flat, cube, face_size, recorded_at FROM answers WHERE digest = ?`, digest,
	).Scan(&e.Digest, &e.Flat, &e.Cube, &e.FaceSize, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, digest)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("store: lookup: %w", err)
	}
	if e.RecordedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
		return Entry{}, fmt.Errorf("store: lookup: recorded_at: %w", err)
	}
	return e, nil
}

// Record inserts e, replacing any earlier entry with the same digest.
// A zero RecordedAt is set to the current time.
func (l *Ledger) Record(ctx context.Context, e Entry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO answers (digest, flat, cube, face_size, recorded_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(digest) DO UPDATE SET
			flat = excluded.flat,
			cube = excluded.cube,
			face_size = excluded.face_size,
			recorded_at = excluded.recorded_at`,
		e.Digest, e.Flat, e.Cube, e.FaceSize, e.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store: record: %w", err)
	}
	return nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
