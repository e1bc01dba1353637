package extractor

import (
	"os"
	"testing"
	"time"

	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/normalize"
	"github.com/pfrederiksen/event-finder/internal/sites"
)

var fixtureSelectors = sites.Selectors{
	Event:     ".event-listing",
	Name:      ".artists strong",
	StartDate: ".time",
	EndDate:   ".time",
	Location:  ".location a",
	Link:      ".event-link",
}

func TestExtractDOM(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/dom_events.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	events, err := Extract(string(data), fixtureSelectors, "https://www.songkick.com")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	expected := []event.Raw{
		{
			Name:      "Midnight Drive",
			StartDate: "7:30 PM",
			EndDate:   "7:30 PM",
			Location:  "Exit/In",
			URL:       "https://www.songkick.com/concerts/4121-midnight-drive",
		},
		{
			Name:      "  The Harbor Lights  ",
			StartDate: "",
			EndDate:   "",
			Location:  "The Basement",
			URL:       "https://tickets.example.org/4122",
		},
		{
			Name:      "Open Mic Night",
			StartDate: "  ",
			EndDate:   "  ",
			Location:  "",
			URL:       "https://www.songkick.com",
		},
	}

	if len(events) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(events))
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event %d = %+v, expected %+v", i, events[i], expected[i])
		}
	}
}

func TestExtractDOMNoContainers(t *testing.T) {
	page := `<html><body><p>Nothing on tonight.</p></body></html>`

	events, err := Extract(page, fixtureSelectors, "https://www.songkick.com")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if events == nil {
		t.Fatal("expected empty non-nil result for a page without containers")
	}
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d", len(events))
	}
}

func TestExtractDOMConfigErrors(t *testing.T) {
	valid := fixtureSelectors

	tests := []struct {
		name      string
		selectors sites.Selectors
		baseURL   string
	}{
		{"invalid container selector", withEvent(valid, "[unclosed"), "https://www.songkick.com"},
		{"invalid name selector", withName(valid, "[unclosed"), "https://www.songkick.com"},
		{"empty link selector", withLink(valid, ""), "https://www.songkick.com"},
		{"relative base URL", valid, "www.songkick.com"},
		{"unparsable base URL", valid, "://missing-scheme"},
		{"empty base URL", valid, ""},
	}

	// The page deliberately matches nothing: configuration errors must
	// not depend on page content.
	page := `<html><body><p>empty</p></body></html>`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Extract(page, tt.selectors, tt.baseURL); err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}

func withEvent(s sites.Selectors, q string) sites.Selectors { s.Event = q; return s }
func withName(s sites.Selectors, q string) sites.Selectors  { s.Name = q; return s }
func withLink(s sites.Selectors, q string) sites.Selectors  { s.Link = q; return s }

func TestExtractDOMFirstMatchPerField(t *testing.T) {
	page := `<html><body>
<div class="event-listing">
	<div class="artists"><strong>First Act</strong><strong>Second Act</strong></div>
	<span class="time">9 PM</span>
	<span class="time">11 PM</span>
</div>
</body></html>`

	events, err := Extract(page, fixtureSelectors, "https://www.songkick.com")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Name != "First Act" {
		t.Errorf("expected first matching name %q, got %q", "First Act", events[0].Name)
	}
	if events[0].StartDate != "9 PM" {
		t.Errorf("expected first matching time %q, got %q", "9 PM", events[0].StartDate)
	}
}

func TestExtractDOMBrokenHref(t *testing.T) {
	page := `<html><body>
<div class="event-listing">
	<div class="artists"><strong>Broken Link Show</strong></div>
	<a class="event-link" href="%zz">tickets</a>
</div>
</body></html>`

	events, err := Extract(page, fixtureSelectors, "https://www.songkick.com")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Name != "Broken Link Show" {
		t.Errorf("expected event to survive its broken link, got name %q", events[0].Name)
	}
	if events[0].URL != "" {
		t.Errorf("expected empty URL for unresolvable href, got %q", events[0].URL)
	}
}

func TestExtractThenNormalize(t *testing.T) {
	page := `<html><body>
<div class="event">
	<h2 class="name">Concert</h2>
	<span class="start-date"></span>
	<span class="end-date"></span>
	<span class="venue">Park</span>
	<a class="link" href="/concert">go</a>
</div>
</body></html>`

	selectors := sites.Selectors{
		Event:     ".event",
		Name:      ".name",
		StartDate: ".start-date",
		EndDate:   ".end-date",
		Location:  ".venue",
		Link:      ".link",
	}

	raw, err := Extract(page, selectors, "http://example.com")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	n := &normalize.Normalizer{
		Now: func() time.Time { return time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC) },
	}
	cleaned := n.Events(raw)

	expected := event.Event{
		Name:      "Concert",
		StartDate: "January 5",
		EndDate:   "N/A",
		Location:  "Park",
		URL:       "http://example.com/concert",
	}

	if len(cleaned) != 1 {
		t.Fatalf("expected 1 event, got %d", len(cleaned))
	}
	if cleaned[0] != expected {
		t.Errorf("pipeline produced %+v, expected %+v", cleaned[0], expected)
	}
}
