// Package nikkepedia scrapes character pages from the wiki and turns them
// into typed records. Navigation inside a page goes through the treepath
// directive language from fixed anchor nodes; every field failure is
// aggregated per record instead of aborting the run.
package nikkepedia

import (
	"time"

	"nikkedle-backend/internal/assert"
	"nikkedle-backend/internal/components/chrono"
	"nikkedle-backend/internal/components/db"
	"nikkedle-backend/internal/components/telemetry"
	"nikkedle-backend/internal/images"
	"nikkedle-backend/lib/characterstore"
)

// Scraper orchestrates fetching, extraction and storage.
type Scraper struct {
	client    *client
	store     *characterstore.Store
	images    *images.Fetcher
	tel       telemetry.API
	time      chrono.API
	indexPath string
}

// NewScraper wires a scraper against the page cache and the character
// store. imageFetcher may be nil to skip portrait downloads.
func NewScraper(
	qry *db.Queries,
	store *characterstore.Store,
	imageFetcher *images.Fetcher,
	clock chrono.API,
	tel telemetry.API,
	baseUrl string,
	indexPath string,
	cacheTTL time.Duration,
) (Scraper, error) {
	assert.NotNil(qry)
	assert.NotNil(store)
	assert.NotNil(clock)
	assert.NotNil(tel)
	assert.NotEmptyStr(baseUrl)
	assert.NotEmptyStr(indexPath)

	tel = telemetry.NewScopedAPI("nikkepedia_scraper", tel)

	client, err := newClient(baseUrl, qry, clock, cacheTTL, tel)
	if err != nil {
		return Scraper{}, err
	}

	return Scraper{
		client:    client,
		store:     store,
		images:    imageFetcher,
		tel:       tel,
		time:      clock,
		indexPath: indexPath,
	}, nil
}
