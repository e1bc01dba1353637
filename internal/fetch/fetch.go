// Package fetch performs the page downloads that feed extraction.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// UserAgent identifies the tool to the sites it scrapes.
	UserAgent = "event-finder/1.0 (github.com/pfrederiksen/event-finder)"

	// DefaultTimeout bounds one page download end to end.
	DefaultTimeout = 30 * time.Second
)

// Client fetches pages synchronously. One Client is shared across the
// sites of a run.
type Client struct {
	client *http.Client
}

// New creates a Client. A non-positive timeout falls back to
// DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// Get downloads url and returns the response body as text. Any
// non-200 status is an error; there is no retry.
func (c *Client) Get(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}
