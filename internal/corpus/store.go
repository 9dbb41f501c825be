// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

// TagStore is a SQLite-backed tag lookup.
type TagStore struct {
	db   *sql.DB
	path string
}

// OpenTagStore opens or creates the tag database at path and creates the
// schema if it does not exist.
func OpenTagStore(path string) (*TagStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, tagsError(path, fmt.Errorf("creating directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, tagsError(path, fmt.Errorf("opening database: %w", err))
	}

	s := &TagStore{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, tagsError(path, fmt.Errorf("creating schema: %w", err))
	}
	return s, nil
}

// Close releases the database connection.
func (s *TagStore) Close() error {
	return s.db.Close()
}

func (s *TagStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tags (
			word TEXT PRIMARY KEY,
			tag TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from a tag import.
type ImportSummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of words written.
func (s ImportSummary) Total() int {
	return s.Inserted + s.Updated
}

// Import writes every entry of l in one transaction. Existing words take
// the new tag. When replace is set, words not in l are removed first.
func (s *TagStore) Import(ctx context.Context, l Lookup, replace bool) (ImportSummary, error) {
	if err := l.Validate(); err != nil {
		return ImportSummary{}, tagsError(s.path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, tagsError(s.path, fmt.Errorf("beginning transaction: %w", err))
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tags`); err != nil {
			return ImportSummary{}, tagsError(s.path, fmt.Errorf("clearing tags: %w", err))
		}
	}

	exists, err := tx.PrepareContext(ctx, `SELECT count(*) FROM tags WHERE word = ?`)
	if err != nil {
		return ImportSummary{}, tagsError(s.path, fmt.Errorf("preparing lookup: %w", err))
	}
	defer exists.Close()

	upsert, err := tx.PrepareContext(ctx,
		`INSERT INTO tags (word, tag) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET tag=excluded.tag`)
	if err != nil {
		return ImportSummary{}, tagsError(s.path, fmt.Errorf("preparing insert: %w", err))
	}
	defer upsert.Close()

	var summary ImportSummary
	for _, w := range l.Words() {
		var n int
		if err := exists.QueryRowContext(ctx, w).Scan(&n); err != nil {
			return ImportSummary{}, tagsError(s.path, fmt.Errorf("checking %s: %w", w, err))
		}
		if _, err := upsert.ExecContext(ctx, w, string(l[w])); err != nil {
			return ImportSummary{}, tagsError(s.path, fmt.Errorf("inserting %s: %w", w, err))
		}
		if n > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportSummary{}, tagsError(s.path, fmt.Errorf("committing: %w", err))
	}
	return summary, nil
}

// Lookup reads the whole store into memory.
func (s *TagStore) Lookup(ctx context.Context) (Lookup, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, tag FROM tags ORDER BY word`)
	if err != nil {
		return nil, tagsError(s.path, fmt.Errorf("querying tags: %w", err))
	}
	defer rows.Close()

	l := make(Lookup)
	for rows.Next() {
		var word, tag string
		if err := rows.Scan(&word, &tag); err != nil {
			return nil, tagsError(s.path, fmt.Errorf("scanning row: %w", err))
		}
		l[word] = types.POSTag(tag)
	}
	if err := rows.Err(); err != nil {
		return nil, tagsError(s.path, fmt.Errorf("iterating rows: %w", err))
	}
	if err := l.Validate(); err != nil {
		return nil, tagsError(s.path, err)
	}
	return l, nil
}

// Counts returns the number of words per tag.
func (s *TagStore) Counts(ctx context.Context) (map[types.POSTag]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tag, count(*) FROM tags GROUP BY tag`)
	if err != nil {
		return nil, tagsError(s.path, fmt.Errorf("counting tags: %w", err))
	}
	defer rows.Close()

	counts := make(map[types.POSTag]int)
	for rows.Next() {
		var (
			tag string
			n   int
		)
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, tagsError(s.path, fmt.Errorf("scanning row: %w", err))
		}
		counts[types.POSTag(tag)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, tagsError(s.path, fmt.Errorf("iterating rows: %w", err))
	}
	return counts, nil
}
