// Package store persists ranked lobster collections in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/f3rmion/lobstr/internal/lobster"
)

// DefaultFile is the database file name used inside an output directory.
const DefaultFile = "collection.db"

const schema = `
CREATE TABLE IF NOT EXISTS collection (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	name    TEXT NOT NULL,
	created INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS tokens (
	id         INTEGER PRIMARY KEY,
	score      REAL NOT NULL,
	rank       INTEGER NOT NULL,
	percentile REAL NOT NULL,
	image      TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS attributes (
	token_id INTEGER NOT NULL REFERENCES tokens(id) ON DELETE CASCADE,
	ord      INTEGER NOT NULL,
	category TEXT NOT NULL,
	option   TEXT NOT NULL,
	PRIMARY KEY (token_id, category)
);
CREATE INDEX IF NOT EXISTS attributes_option ON attributes(category, option);
`

// Store is an open collection database.
type Store struct {
	path  string
	db    *sql.DB
	order []string
}

// Open opens or creates the database at path. order is the category order
// used when writing attributes; it may be nil when only reading.
func Open(path string, order []string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{path: path, db: db, order: order}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCollection replaces the stored collection with entries.
func (s *Store) SaveCollection(ctx context.Context, name string, entries []lobster.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM attributes", "DELETE FROM tokens", "DELETE FROM collection"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing collection: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO collection (id, name, created) VALUES (1, ?, ?)", name, time.Now().Unix()); err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}

	tokStmt, err := tx.PrepareContext(ctx, "INSERT INTO tokens (id, score, rank, percentile, image) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing token insert: %w", err)
	}
	defer tokStmt.Close()
	attrStmt, err := tx.PrepareContext(ctx, "INSERT INTO attributes (token_id, ord, category, option) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing attribute insert: %w", err)
	}
	defer attrStmt.Close()

	for _, e := range entries {
		if _, err := tokStmt.ExecContext(ctx, e.TokenID, e.Score, e.Rank, e.Percentile, e.ImagePath); err != nil {
			return fmt.Errorf("writing token %d: %w", e.TokenID, err)
		}
		for i, a := range s.attributes(e.Traits) {
			if _, err := attrStmt.ExecContext(ctx, e.TokenID, i, a.TraitType, a.Value); err != nil {
				return fmt.Errorf("writing token %d attribute %s: %w", e.TokenID, a.TraitType, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing collection: %w", err)
	}
	return nil
}

// attributes lists t in the configured category order, followed by any
// remaining categories sorted by name.
func (s *Store) attributes(t lobster.Traits) []lobster.Attribute {
	attrs := t.Attributes(s.order)
	if len(attrs) == len(t) {
		return attrs
	}
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		seen[a.TraitType] = true
	}
	var rest []string
	for k := range t {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(attrs, t.Attributes(rest)...)
}

// Name returns the stored collection name, or "" when nothing is stored.
func (s *Store) Name(ctx context.Context) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, "SELECT name FROM collection WHERE id = 1").Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading collection: %w", err)
	}
	return name, nil
}

// Entries loads every stored token in rank order.
func (s *Store) Entries(ctx context.Context) ([]lobster.Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, score, rank, percentile, image FROM tokens ORDER BY rank, id")
	if err != nil {
		return nil, fmt.Errorf("querying tokens: %w", err)
	}
	defer rows.Close()

	var entries []lobster.Entry
	index := make(map[int]int)
	for rows.Next() {
		var e lobster.Entry
		if err := rows.Scan(&e.TokenID, &e.Score, &e.Rank, &e.Percentile, &e.ImagePath); err != nil {
			return nil, fmt.Errorf("scanning token: %w", err)
		}
		e.Traits = make(lobster.Traits)
		index[e.TokenID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attrs, err := s.db.QueryContext(ctx, "SELECT token_id, category, option FROM attributes")
	if err != nil {
		return nil, fmt.Errorf("querying attributes: %w", err)
	}
	defer attrs.Close()
	for attrs.Next() {
		var id int
		var category, option string
		if err := attrs.Scan(&id, &category, &option); err != nil {
			return nil, fmt.Errorf("scanning attribute: %w", err)
		}
		if i, ok := index[id]; ok {
			entries[i].Traits[category] = option
		}
	}
	return entries, attrs.Err()
}

// Token loads a single token.
func (s *Store) Token(ctx context.Context, id int) (lobster.Entry, error) {
	e := lobster.Entry{TokenID: id, Traits: make(lobster.Traits)}
	err := s.db.QueryRowContext(ctx, "SELECT score, rank, percentile, image FROM tokens WHERE id = ?", id).
		Scan(&e.Score, &e.Rank, &e.Percentile, &e.ImagePath)
	if err == sql.ErrNoRows {
		return e, fmt.Errorf("token %d not found", id)
	}
	if err != nil {
		return e, fmt.Errorf("reading token %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT category, option FROM attributes WHERE token_id = ? ORDER BY ord", id)
	if err != nil {
		return e, fmt.Errorf("querying attributes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category, option string
		if err := rows.Scan(&category, &option); err != nil {
			return e, fmt.Errorf("scanning attribute: %w", err)
		}
		e.Traits[category] = option
	}
	return e, rows.Err()
}

// OptionCount is how many tokens carry one option.
type OptionCount struct {
	Option string
	Count  int
}

// Counts returns the option frequencies of category, most common first.
func (s *Store) Counts(ctx context.Context, category string) ([]OptionCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT option, COUNT(*) AS n
		FROM attributes
		WHERE category = ?
		GROUP BY option
		ORDER BY n DESC, option
	`, category)
	if err != nil {
		return nil, fmt.Errorf("counting %s: %w", category, err)
	}
	defer rows.Close()

	var out []OptionCount
	for rows.Next() {
		var c OptionCount
		if err := rows.Scan(&c.Option, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Summary describes the stored collection in a few lines.
func (s *Store) Summary(ctx context.Context) (string, error) {
	name, err := s.Name(ctx)
	if err != nil {
		return "", err
	}
	var n int
	var top sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*), MAX(score) FROM tokens").Scan(&n, &top); err != nil {
		return "", fmt.Errorf("reading totals: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Collection: %s\n", name))
	sb.WriteString(fmt.Sprintf("  Database: %s\n", s.path))
	sb.WriteString(fmt.Sprintf("  Tokens: %d\n", n))
	if top.Valid {
		sb.WriteString(fmt.Sprintf("  Top score: %.2f\n", top.Float64))
	}
	return sb.String(), nil
}
