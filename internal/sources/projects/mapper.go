package projects

import (
	"errors"
	"fmt"

	"github.com/linkboard/linkboard/internal/domain"
)

// ErrMissingLinkURL is returned when a link entry has no url. The url
// is the only required link field; a link without one is a fatal
// config error in either shape.
var ErrMissingLinkURL = errors.New("link is missing required url")

// Mapper normalizes a RawConfig into the canonical domain model,
// enforcing the invariants the renderer relies on.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts a RawConfig to a domain.Config, preserving project and
// link order as declared in the file.
func (m *Mapper) Map(raw *RawConfig) (*domain.Config, error) {
	cfg := &domain.Config{Title: raw.Title}

	for _, rp := range raw.Projects {
		if rp.Name == "" {
			return nil, fmt.Errorf("project at position %d has no name", len(cfg.Projects))
		}

		project := domain.Project{
			Name:        rp.Name,
			Description: rp.Description,
			Icon:        rp.Icon,
		}

		for _, rl := range rp.Links {
			if rl.URL == "" {
				return nil, fmt.Errorf("project %q, link %q: %w", rp.Name, rl.Name, ErrMissingLinkURL)
			}
			project.Links = append(project.Links, domain.Link{
				Name:        rl.Name,
				URL:         rl.URL,
				Description: rl.Description,
				Private:     rl.Private,
				Tags:        dedupeTags(rl.Tags),
			})
		}

		cfg.Projects = append(cfg.Projects, project)
	}

	return cfg, nil
}

// dedupeTags removes duplicate tags within one link, keeping first-seen order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
