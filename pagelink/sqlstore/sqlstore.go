// Package sqlstore implements pagelink.Store on top of a SQLite page table.
//
// The table is owned by the host; CreateSchema and PutPage exist for fixtures
// and the command line tool.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rgonek/draftail-anchors/pagelink"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	parent_id TEXT NOT NULL DEFAULT '',
	locale TEXT NOT NULL DEFAULT '',
	translation_key TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_pages_translation ON pages(translation_key, locale);
`

// Store reads pages from SQLite.
type Store struct {
	db     *sql.DB
	locale string
}

var _ pagelink.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLocale makes SpecificPages return the translation in locale when one exists.
func WithLocale(locale string) Option {
	return func(s *Store) {
		s.locale = locale
	}
}

// Open opens the SQLite database at dsn.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open page database: %w", err)
	}
	return New(db, opts...), nil
}

// New wraps an existing database handle.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateSchema creates the pages table when it does not exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create page schema: %w", err)
	}
	return nil
}

// PutPage inserts or replaces a page row.
func (s *Store) PutPage(ctx context.Context, page pagelink.PageRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO pages (id, url, parent_id, locale, translation_key) VALUES (?, ?, ?, ?, ?)`,
		page.ID, page.URL, page.ParentID, page.Locale, page.TranslationKey,
	)
	if err != nil {
		return fmt.Errorf("failed to store page %q: %w", page.ID, err)
	}
	return nil
}

// SpecificPages implements pagelink.Store with a single query. Each page is
// joined against its translation in the configured locale; pages without one
// keep their own URL.
func (s *Store) SpecificPages(ctx context.Context, ids []string) (map[string]pagelink.Page, error) {
	result := make(map[string]pagelink.Page, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `
		SELECT p.id, COALESCE(t.id, p.id), COALESCE(t.url, p.url), p.parent_id, COALESCE(t.locale, p.locale)
		FROM pages p
		LEFT JOIN pages t
			ON t.translation_key = p.translation_key
			AND p.translation_key <> ''
			AND t.locale = ?
			AND t.locale <> ''
		WHERE p.id IN (` + placeholders + `)`

	args := make([]any, 0, len(ids)+1)
	args = append(args, s.locale)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var requestedID string
		var page pagelink.Page
		if err := rows.Scan(&requestedID, &page.ID, &page.URL, &page.ParentID, &page.Locale); err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		result[requestedID] = page
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page rows: %w", err)
	}

	return result, nil
}
