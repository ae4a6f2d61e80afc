// Package db holds the on-disk cache of fetched wiki pages, keyed by url.
// Incremental scrape runs consult it before touching the network.
package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type CachedPage struct {
	Url       string
	Body      string
	FetchedAt int64
}

const getCachedPage = `
SELECT url, body, fetched_at FROM page_cache WHERE url = ?
`

// GetCachedPage returns sql.ErrNoRows for a url that was never fetched.
func (q *Queries) GetCachedPage(ctx context.Context, url string) (CachedPage, error) {
	row := q.db.QueryRowContext(ctx, getCachedPage, url)
	var page CachedPage
	err := row.Scan(&page.Url, &page.Body, &page.FetchedAt)
	return page, err
}

const upsertCachedPage = `
INSERT INTO page_cache (url, body, fetched_at)
VALUES (?, ?, ?)
ON CONFLICT (url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
`

type UpsertCachedPageParams struct {
	Url       string
	Body      string
	FetchedAt int64
}

func (q *Queries) UpsertCachedPage(ctx context.Context, params UpsertCachedPageParams) error {
	_, err := q.db.ExecContext(ctx, upsertCachedPage, params.Url, params.Body, params.FetchedAt)
	return err
}

const deletePagesFetchedBefore = `
DELETE FROM page_cache WHERE fetched_at < ?
`

func (q *Queries) DeletePagesFetchedBefore(ctx context.Context, before int64) error {
	_, err := q.db.ExecContext(ctx, deletePagesFetchedBefore, before)
	return err
}

const countCachedPages = `
SELECT COUNT(*) FROM page_cache
`

func (q *Queries) CountCachedPages(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCachedPages)
	var count int64
	err := row.Scan(&count)
	return count, err
}
