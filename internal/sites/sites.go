package sites

import (
	"fmt"
	"strings"
)

// StructuredData is the event-selector value that switches a site to
// structured-data extraction. It doubles as the query used to locate
// the embedded block, so the exact quoting matters.
const StructuredData = "script[type='application/ld+json']"

// Selectors locates event fields within one site's markup. All fields
// are plain selector strings; syntax is checked when extraction runs,
// not at construction.
type Selectors struct {
	Event     string `yaml:"event" json:"event"`
	Name      string `yaml:"name" json:"name"`
	StartDate string `yaml:"start_date" json:"start_date"`
	EndDate   string `yaml:"end_date" json:"end_date"`
	Location  string `yaml:"location" json:"location"`
	Link      string `yaml:"url" json:"url"`
}

// Structured reports whether the event selector requests
// structured-data mode. Only the exact sentinel string counts.
func (s Selectors) Structured() bool {
	return s.Event == StructuredData
}

// Category groups sites for menu and flag selection.
type Category string

const (
	Music   Category = "music"
	Unique  Category = "unique"
	General Category = "general"

	// All selects every site. It is a selection alias, never a value
	// stored on a Site.
	All Category = "all"
)

// ParseCategory maps user input, either a menu digit or a category
// word in any letter case, to a Category.
func ParseCategory(input string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "music":
		return Music, nil
	case "2", "unique":
		return Unique, nil
	case "3", "general":
		return General, nil
	case "4", "all":
		return All, nil
	default:
		return "", fmt.Errorf("unknown category: %q", input)
	}
}

// Site describes one scrape target. URL is the page fetched; BaseURL
// anchors relative event links found on it.
type Site struct {
	Name      string    `yaml:"name" json:"name"`
	Category  Category  `yaml:"category" json:"category"`
	URL       string    `yaml:"url" json:"url"`
	BaseURL   string    `yaml:"base_url" json:"base_url"`
	Selectors Selectors `yaml:"selectors" json:"selectors"`
}

// Builtin returns the stock registry: one site per category.
func Builtin() []Site {
	return []Site{
		{
			Name:     "songkick",
			Category: Music,
			URL:      "https://www.songkick.com/metro-areas/11104-us-nashville/tonight",
			BaseURL:  "https://www.songkick.com",
			Selectors: Selectors{
				Event:     ".event-listings-element",
				Name:      ".artists > a > span > strong",
				StartDate: ".time",
				EndDate:   ".time",
				Location:  ".location > span > a",
				Link:      ".artists > .event-link",
			},
		},
		{
			Name:     "perto",
			Category: Unique,
			URL:      "https://en.perto.com/us/nashville-10005/events-today/",
			BaseURL:  "https://en.perto.com",
			Selectors: Selectors{
				Event:     ".pt_col",
				Name:      ".infos > a > strong",
				StartDate: ".infos > ul > li > span",
				EndDate:   ".time",
				Location:  ".infos > ul > .pt_list-item.event-location > span",
				Link:      "a",
			},
		},
		{
			Name:     "nashville.com",
			Category: General,
			URL:      "https://www.nashville.com/calendar-of-events/",
			BaseURL:  "https://www.nashville.com",
			Selectors: Selectors{
				Event:     ".tribe-events-calendar-list__event",
				Name:      ".tribe-events-calendar-list__event-title-link",
				StartDate: ".tribe-event-date-start",
				EndDate:   ".tribe-event-date-end",
				Location:  ".tribe-events-calendar-list__event-venue-title",
				Link:      ".tribe-events-calendar-list__event-title-link",
			},
		},
	}
}

// Filter returns the registry's sites belonging to the category, in
// registry order. All returns every site.
func Filter(registry []Site, category Category) []Site {
	if category == All {
		return registry
	}
	matched := make([]Site, 0, len(registry))
	for _, s := range registry {
		if s.Category == category {
			matched = append(matched, s)
		}
	}
	return matched
}
