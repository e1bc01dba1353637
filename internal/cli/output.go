package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/sites"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	FetchedAt  time.Time      `json:"fetched_at"`
	Category   sites.Category `json:"category"`
	Sites      []string       `json:"sites"`
	Events     []event.Event  `json:"events"`
	EventCount int            `json:"event_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	writeEvents(w, result.Events)
	fmt.Fprintf(w, "Total: %d events\n", result.EventCount)
	return nil
}

// writeEvents renders the labelled block shared by menu and one-shot
// modes: five lines per event, a blank line after each.
func writeEvents(w io.Writer, events []event.Event) {
	for _, evt := range events {
		fmt.Fprintf(w, "Name: %s\nStart Date: %s\nEnd Date: %s\nLocation: %s\nURL: %s\n",
			evt.Name, evt.StartDate, evt.EndDate, evt.Location, evt.URL)
		fmt.Fprintln(w)
	}
}
