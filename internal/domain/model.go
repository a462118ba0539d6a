package domain

// Link is a single entry on a project card.
type Link struct {
	// Name is the display label, taken from the mapping key or the
	// explicit name field depending on the config shape.
	Name string

	// URL is the target. It is the only required field.
	URL string

	// Description is optional Markdown shown under the link name.
	Description string

	// Private marks links that only resolve on a private network.
	Private bool

	// Tags are free-form labels used by the client-side filter.
	Tags []string
}

// Project groups related links under one card.
type Project struct {
	Name        string
	Description string

	// Icon is either an emoji (rendered as text) or an http(s) image URL.
	Icon string

	Links []Link
}

// Config is the canonical, shape-independent model built from the YAML
// file. It is constructed once per run and never mutated afterwards.
type Config struct {
	Title    string
	Projects []Project
}

// AllTags returns the deduplicated union of every link tag across the
// whole config, in first-seen document order.
func (c *Config) AllTags() []string {
	var tags []string
	seen := make(map[string]bool)

	for _, project := range c.Projects {
		for _, link := range project.Links {
			for _, tag := range link.Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}
	return tags
}

// LinkCount returns the total number of links across all projects.
func (c *Config) LinkCount() int {
	n := 0
	for _, project := range c.Projects {
		n += len(project.Links)
	}
	return n
}
