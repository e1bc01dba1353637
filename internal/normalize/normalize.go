// Package normalize turns raw extracted events into clean records:
// trimmed text fields and guaranteed-present dates.
package normalize

import (
	"strings"
	"time"

	"github.com/pfrederiksen/event-finder/internal/event"
)

// todayLayout renders the defaulted start date as the full month name
// followed by the space-padded day of month: "August 5", "August25".
const todayLayout = "January_2"

// Normalizer cleans raw events. Now supplies the local date used when
// a start date is missing; tests pin it to a fixed clock.
type Normalizer struct {
	Now func() time.Time
}

// New returns a Normalizer on the system clock.
func New() *Normalizer {
	return &Normalizer{Now: time.Now}
}

// Events cleans raw records one-to-one, preserving order; it never
// drops or merges. Name and location are trimmed. An empty start date
// becomes today's date, an empty end date becomes "N/A", and non-empty
// dates are kept verbatim apart from trimming. URLs pass through
// untouched.
func (n *Normalizer) Events(raw []event.Raw) []event.Event {
	events := make([]event.Event, 0, len(raw))
	for _, r := range raw {
		events = append(events, event.Event{
			Name:      strings.TrimSpace(r.Name),
			StartDate: n.startDate(r.StartDate),
			EndDate:   endDate(r.EndDate),
			Location:  strings.TrimSpace(r.Location),
			URL:       r.URL,
		})
	}
	return events
}

func (n *Normalizer) startDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return n.Now().Format(todayLayout)
	}
	return s
}

func endDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "N/A"
	}
	return s
}
