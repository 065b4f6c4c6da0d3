// Package index maintains an in-memory SQLite FTS5 index over document text.
// It powers full-text content search with ranking and snippets; the simple
// substring search in the store stays as the fallback when the index is
// unavailable. The index is rebuilt from the store at startup and updated on
// every save, so it never needs to be persisted.
package index

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/vietkhmer/vkedit/internal/store"
)

// schema keeps diacritics significant; Vietnamese tone marks distinguish
// words and must not be folded away.
const schema = `
CREATE VIRTUAL TABLE IF NOT EXISTS docs_fts USING fts5(
    id UNINDEXED,
    title,
    body,
    tokenize = 'unicode61 remove_diacritics 0'
);
`

// Index is the FTS5 search index. Safe for concurrent WASM callbacks.
type Index struct {
	mu sync.Mutex
	db *sql.DB
}

// Hit is one search result, best-ranked first.
type Hit struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Rank    float64 `json:"rank"`
}

// New opens an in-memory index.
func New() (*Index, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create fts table: %w", err)
	}
	return &Index{db: db}, nil
}

// Rebuild replaces the whole index with the given documents.
func (ix *Index) Rebuild(docs map[string]store.Document) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM docs_fts`); err != nil {
		return err
	}
	for _, d := range docs {
		if err := insertDoc(tx, d); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Update re-indexes one document.
func (ix *Index) Update(doc store.Document) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM docs_fts WHERE id = ?`, doc.ID); err != nil {
		return err
	}
	if err := insertDoc(tx, doc); err != nil {
		return err
	}
	return tx.Commit()
}

// Remove drops one document from the index.
func (ix *Index) Remove(id string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, err := ix.db.Exec(`DELETE FROM docs_fts WHERE id = ?`, id)
	return err
}

// Search runs a ranked full-text query. Snippets wrap matched terms in
// <mark> tags for the result list.
func (ix *Index) Search(query string, limit int) ([]Hit, error) {
	q := ftsQuery(query)
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	rows, err := ix.db.Query(`
		SELECT id, title, snippet(docs_fts, 2, '<mark>', '</mark>', '…', 12), bm25(docs_fts)
		FROM docs_fts
		WHERE docs_fts MATCH ?
		ORDER BY bm25(docs_fts)
		LIMIT ?`, q, limit)
	if err != nil {
		return nil, fmt.Errorf("fts query: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ID, &h.Title, &h.Snippet, &h.Rank); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Count returns the number of indexed documents.
func (ix *Index) Count() (int, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	var n int
	err := ix.db.QueryRow(`SELECT count(*) FROM docs_fts`).Scan(&n)
	return n, err
}

// Close releases the database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func insertDoc(tx *sql.Tx, d store.Document) error {
	_, err := tx.Exec(`INSERT INTO docs_fts (id, title, body) VALUES (?, ?, ?)`,
		d.ID, d.Title, stripTags(d.HTML))
	return err
}

// ftsQuery turns free-form user input into an FTS5 expression. Every token
// is quoted so punctuation and FTS operators in user text cannot break the
// query syntax; multiple tokens form an implicit AND.
func ftsQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " ")
}

// stripTags flattens HTML to indexable text.
func stripTags(html string) string {
	var b strings.Builder
	b.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
