// Package sites describes the pages event-finder scrapes and how to
// read them.
//
// A Site couples a page URL with the Selectors that locate event fields
// in its markup, grouped under a Category for menu and flag selection.
// The stock registry from Builtin covers one site per category; Load
// replaces it with a YAML file. Selector strings are held verbatim and
// validated at extraction time, not here.
package sites
