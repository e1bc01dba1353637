package cli

import (
	"fmt"

	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/extractor"
	"github.com/pfrederiksen/event-finder/internal/fetch"
	"github.com/pfrederiksen/event-finder/internal/logger"
	"github.com/pfrederiksen/event-finder/internal/normalize"
	"github.com/pfrederiksen/event-finder/internal/sites"
)

// scraper drives fetch, extract and normalize over a site registry.
type scraper struct {
	fetcher   *fetch.Client
	registry  []sites.Site
	normalize *normalize.Normalizer
}

func newScraper(f *fetch.Client, registry []sites.Site) *scraper {
	return &scraper{
		fetcher:   f,
		registry:  registry,
		normalize: normalize.New(),
	}
}

// scrape fetches every site in the category and returns the cleaned
// events in registry order. A site that fails to fetch is logged and
// skipped; an extraction configuration error aborts the run.
func (s *scraper) scrape(category sites.Category) ([]event.Event, error) {
	selected := sites.Filter(s.registry, category)

	events := make([]event.Event, 0)
	for _, site := range selected {
		logger.Log.Debug().Str("site", site.Name).Str("url", site.URL).Msg("fetching page")

		page, err := s.fetcher.Get(site.URL)
		if err != nil {
			logger.Log.Error().Err(err).Str("site", site.Name).Msg("skipping site")
			continue
		}

		raw, err := extractor.Extract(page, site.Selectors, site.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", site.Name, err)
		}
		logger.Log.Debug().Str("site", site.Name).Int("events", len(raw)).Msg("extracted")

		events = append(events, s.normalize.Events(raw)...)
	}
	return events, nil
}
