package sites

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Registry is the on-disk form of a site list.
type Registry struct {
	Sites []Site `yaml:"sites"`
}

// Load reads a YAML site registry, replacing the built-in sites. It
// rejects files that would leave the tool with nothing valid to
// scrape.
func Load(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	if len(reg.Sites) == 0 {
		return nil, fmt.Errorf("registry %s lists no sites", path)
	}

	for i, s := range reg.Sites {
		if err := validateSite(s); err != nil {
			return nil, fmt.Errorf("site %d: %w", i, err)
		}
	}
	return reg.Sites, nil
}

func validateSite(s Site) error {
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}
	switch s.Category {
	case Music, Unique, General:
	case All:
		return fmt.Errorf("category %q is a selection alias, not a site category", All)
	default:
		return fmt.Errorf("unknown category %q", s.Category)
	}
	if s.URL == "" {
		return fmt.Errorf("missing url")
	}
	if s.Selectors.Event == "" {
		return fmt.Errorf("missing event selector")
	}
	// Structured-data sites read fixed field names from the embedded
	// block and never resolve links, so only DOM sites need the rest.
	if !s.Selectors.Structured() {
		if s.BaseURL == "" {
			return fmt.Errorf("missing base_url")
		}
		if s.Selectors.Name == "" || s.Selectors.StartDate == "" ||
			s.Selectors.EndDate == "" || s.Selectors.Location == "" ||
			s.Selectors.Link == "" {
			return fmt.Errorf("missing field selector")
		}
	}
	return nil
}
