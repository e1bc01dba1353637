package event

// Raw is an event exactly as extracted from a page. Extraction emits a
// record for every matched container, so any field may be empty.
type Raw struct {
	Name      string
	StartDate string
	EndDate   string
	Location  string
	URL       string
}

// Event is a normalized event record. Name and Location carry no
// leading or trailing whitespace, StartDate and EndDate are never
// empty, and URL is whatever extraction produced, untouched.
type Event struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Location  string `json:"location"`
	URL       string `json:"url"`
}
