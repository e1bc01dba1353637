// Package extractor turns fetched page text into raw event records.
//
// Extraction is driven by a sites.Selectors value and runs one of two
// strategies: a CSS-selector walk over conventional markup, or a read
// of the page's embedded structured-data block when the event selector
// is the reserved sentinel. Both produce the same record shape, so
// callers never care which convention a site publishes with. Selector
// syntax and the base URL are configuration: getting them wrong fails
// the whole call. Everything the page itself gets wrong degrades to
// empty fields or an empty result instead.
package extractor
