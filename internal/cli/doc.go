// Package cli implements the command-line interface for event-finder.
//
// The cli package provides the Cobra-based CLI with two entry modes: an
// interactive menu loop when no category flag is given, and a one-shot
// scrape of a single category when it is. It coordinates the fetch,
// extractor and normalize packages over a site registry and renders the
// results as labelled text blocks or JSON.
package cli
