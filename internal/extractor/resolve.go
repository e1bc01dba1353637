package extractor

import (
	"fmt"
	"net/url"
)

// Resolve joins a possibly-relative reference onto an absolute base
// URL per RFC 3986. An empty reference resolves to the base unchanged.
// The base not being an absolute URL is an error; it is configuration,
// never page data.
func Resolve(base, ref string) (string, error) {
	b, err := parseBase(base)
	if err != nil {
		return "", err
	}
	return resolveRef(b, ref)
}

func parseBase(base string) (*url.URL, error) {
	b, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if !b.IsAbs() {
		return nil, fmt.Errorf("base URL %q is not absolute", base)
	}
	return b, nil
}

func resolveRef(base *url.URL, ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", ref, err)
	}
	return base.ResolveReference(r).String(), nil
}
