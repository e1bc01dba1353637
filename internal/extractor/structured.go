package extractor

import (
	"encoding/json"

	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/logger"
	"github.com/pfrederiksen/event-finder/internal/markup"
)

// extractStructured reads events from the first embedded data block
// matching the selector. The block holds either one event object or an
// array of them in the schema.org shape: name, startDate, endDate,
// location.name, url. Field selectors play no part here, and a
// malformed payload yields zero events rather than an error.
func extractStructured(doc markup.Document, selector string) []event.Raw {
	events := make([]event.Raw, 0)

	blocks, err := doc.Select(selector)
	if err != nil || len(blocks) == 0 {
		return events
	}

	var parsed any
	if err := json.Unmarshal([]byte(blocks[0].Text()), &parsed); err != nil {
		logger.Log.Warn().Err(err).Msg("malformed structured-data block")
		return events
	}

	items, ok := parsed.([]any)
	if !ok {
		items = []any{parsed}
	}
	for _, item := range items {
		// A non-object item still yields a record, with every field
		// defaulted to "".
		obj, _ := item.(map[string]any)
		events = append(events, event.Raw{
			Name:      stringField(obj, "name"),
			StartDate: stringField(obj, "startDate"),
			EndDate:   stringField(obj, "endDate"),
			Location:  nestedStringField(obj, "location", "name"),
			URL:       stringField(obj, "url"),
		})
	}
	return events
}

// stringField reads a top-level string value, mapping absent keys and
// wrong-typed values to "". A nil map is fine.
func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func nestedStringField(obj map[string]any, key, sub string) string {
	m, _ := obj[key].(map[string]any)
	return stringField(m, sub)
}
