// scraper.go combines fetching, listing and per-page extraction into full
// scrape runs against the wiki.

package nikkepedia

import (
	"context"
	"fmt"

	"nikkedle-backend/lib/dailypick"
	"nikkedle-backend/lib/nikke"
)

const (
	report_scrape_all       = "scraper.scrape-all"
	report_scrape_character = "scraper.scrape-character"
	report_scrape_stored    = "scraper.stored-records"
)

// ScrapeAll fetches the character index, extracts every listed character
// and upserts the successfully extracted records into the store. A record
// with any failed field is reported and skipped; it never aborts the run.
func (s Scraper) ScrapeAll(ctx context.Context) error {
	indexDoc, err := s.client.GetPage(ctx, s.indexPath)
	if err != nil {
		s.tel.ReportBroken(report_scrape_all, fmt.Errorf("fetch index: %w", err))
		return err
	}

	links := ListCharacters(indexDoc, s.tel)
	if len(links) == 0 {
		err := fmt.Errorf("character index '%s' yielded no cards", s.indexPath)
		s.tel.ReportBroken(report_scrape_all, err)
		return err
	}

	var records []nikke.Character
	var imageUrls []string
	for _, link := range links {
		doc, err := s.client.GetPage(ctx, link.Href)
		if err != nil {
			s.tel.ReportBroken(report_scrape_character, err, link.Name)
			continue
		}

		result := ExtractCharacter(ctx, doc)
		report, isErr := result.GetErr()
		if isErr {
			s.tel.ReportBroken(report_scrape_character, report.String(), link.Name)
			continue
		}

		record := result.MustGet()
		records = append(records, record)
		imageUrls = append(imageUrls, record.ImageURL)
	}

	added, replaced, err := s.store.Upsert(records)
	if err != nil {
		s.tel.ReportBroken(report_scrape_all, fmt.Errorf("upsert records: %w", err))
		return err
	}
	s.tel.ReportCount(report_scrape_stored, int64(added+replaced))
	s.tel.ReportDebug(
		report_scrape_all,
		"cards", len(links),
		"extracted", len(records),
		"added", added,
		"replaced", replaced,
	)

	if s.images != nil {
		err = s.images.FetchAll(ctx, imageUrls)
		if err != nil {
			// portrait failures do not fail the run, the next run retries them
			s.tel.ReportWarning(report_scrape_all, fmt.Errorf("fetch portraits: %w", err))
		}
	}

	return nil
}

// DailyPick returns the character every caller shares for the current UTC
// calendar day.
func (s Scraper) DailyPick() (nikke.Character, error) {
	records, err := s.store.Load()
	if err != nil {
		return nikke.Character{}, err
	}

	record, ok := dailypick.PickOne(dailypick.DateSeed(s.time.Now()), records)
	if !ok {
		return nikke.Character{}, fmt.Errorf("no characters stored, run a scrape first")
	}
	return record, nil
}
