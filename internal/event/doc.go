// Package event defines the records passed between the extraction and
// normalization stages.
//
// Raw holds field values exactly as they were found in a page, any of which
// may be empty. Event is the cleaned form produced by the normalizer and
// rendered by the CLI: text fields are trimmed and both dates are guaranteed
// non-empty. Records carry no identity beyond their field values; two events
// with equal fields are indistinguishable.
package event
