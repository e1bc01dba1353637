package extractor

import (
	"strings"

	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/logger"
	"github.com/pfrederiksen/event-finder/internal/markup"
	"github.com/pfrederiksen/event-finder/internal/sites"
)

// Extract parses pageText and returns one raw event per container
// matched by sel, in document order. baseURL anchors relative event
// links and is only consulted in DOM mode. Zero matches is an empty
// result, not an error.
func Extract(pageText string, sel sites.Selectors, baseURL string) ([]event.Raw, error) {
	doc, err := markup.Parse(strings.NewReader(pageText))
	if err != nil {
		return nil, err
	}
	if sel.Structured() {
		return extractStructured(doc, sel.Event), nil
	}
	return extractDOM(doc, sel, baseURL)
}

// extractDOM walks the containers matched by the event selector and
// reads each field from the first descendant its selector matches.
// All six selectors and the base URL are checked before any traversal,
// so configuration errors surface no matter what the page contains.
func extractDOM(doc markup.Document, sel sites.Selectors, baseURL string) ([]event.Raw, error) {
	for _, q := range []string{sel.Event, sel.Name, sel.StartDate, sel.EndDate, sel.Location, sel.Link} {
		if err := markup.ValidateSelector(q); err != nil {
			return nil, err
		}
	}
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}

	containers, err := doc.Select(sel.Event)
	if err != nil {
		return nil, err
	}

	events := make([]event.Raw, 0, len(containers))
	for _, block := range containers {
		href, _ := firstAttr(block, sel.Link, "href")
		url, err := resolveRef(base, href)
		if err != nil {
			// A matched link with a broken href is the page's fault,
			// not the config's: keep the event, drop the link.
			logger.Log.Warn().Err(err).Str("href", href).Msg("unresolvable event link")
			url = ""
		}
		events = append(events, event.Raw{
			Name:      firstText(block, sel.Name),
			StartDate: firstText(block, sel.StartDate),
			EndDate:   firstText(block, sel.EndDate),
			Location:  firstText(block, sel.Location),
			URL:       url,
		})
	}
	return events, nil
}

// firstText returns the text of the first descendant matching the
// selector, or "" when nothing matches.
func firstText(n markup.Node, selector string) string {
	matches, err := n.Select(selector)
	if err != nil || len(matches) == 0 {
		return ""
	}
	return matches[0].Text()
}

// firstAttr returns the named attribute of the first descendant
// matching the selector.
func firstAttr(n markup.Node, selector, name string) (string, bool) {
	matches, err := n.Select(selector)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0].Attr(name)
}
