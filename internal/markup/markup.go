// Package markup wraps the HTML library behind a small traversal
// interface, so extraction code depends on selectors and nodes rather
// than on a particular parser.
package markup

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Node is one element of a parsed document.
type Node interface {
	// Select returns the descendants matching the selector, in document
	// order. An invalid selector is an error.
	Select(selector string) ([]Node, error)
	// Text returns the element's text content.
	Text() string
	// Attr returns the value of the named attribute and whether the
	// attribute is present.
	Attr(name string) (string, bool)
}

// Document is the root node of a parsed HTML page.
type Document interface {
	Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return node{doc.Selection}, nil
}

// ValidateSelector checks selector syntax without touching a document.
// goquery's own Find treats a bad selector as matching nothing, so
// syntax errors have to be surfaced through the compiler directly.
func ValidateSelector(selector string) error {
	if _, err := cascadia.Compile(selector); err != nil {
		return fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return nil
}

type node struct {
	sel *goquery.Selection
}

func (n node) Select(selector string) ([]Node, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	found := n.sel.FindMatcher(matcher)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, node{s})
	})
	return nodes, nil
}

func (n node) Text() string {
	return n.sel.Text()
}

func (n node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}
