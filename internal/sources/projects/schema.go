package projects

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The projects file comes in two accepted shapes. The legacy shape is a
// sequence of project objects with explicit name fields; the current
// shape is a mapping with an optional title and a projects mapping
// keyed by project name. Mapping keys double as display names and their
// insertion order is display order, so decoding walks yaml.Node content
// directly instead of going through a Go map.

// Shape is the detected layout of the YAML document.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeList          // legacy: sequence of {project, links: [...]}
	ShapeMap           // current: {title?, projects: {name: {...}}}
)

// RawConfig is the decoded file before normalization into domain types.
type RawConfig struct {
	Shape    Shape
	Title    string
	Projects []RawProject
}

// RawProject is one decoded project entry, shape-independent.
type RawProject struct {
	Name        string
	Description string
	Icon        string
	Links       []RawLink
}

// RawLink is one decoded link entry. A bare-string link value is
// resolved during decoding: the string becomes URL and every other
// field stays zero. Render-time code never re-checks the two forms.
type RawLink struct {
	Name        string
	URL         string
	Description string
	Private     bool
	Tags        []string
}

// listProject mirrors one element of the legacy sequence shape.
// Unknown fields are ignored by the decoder.
type listProject struct {
	Project     string     `yaml:"project"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Links       []listLink `yaml:"links"`
}

type listLink struct {
	Name        string   `yaml:"name"`
	URL         string   `yaml:"url"`
	Description string   `yaml:"description"`
	Private     bool     `yaml:"private"`
	Tags        []string `yaml:"tags"`
}

// mapDocument mirrors the top level of the current shape.
type mapDocument struct {
	Title    string     `yaml:"title"`
	Projects projectMap `yaml:"projects"`
}

// projectMap decodes the projects value while preserving key order.
// It is usually a mapping keyed by project name, but the legacy
// sequence form is also accepted nested under a mapping root.
type projectMap []RawProject

func (pm *projectMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []listProject
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		*pm = rawProjects(list)
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("projects must be a mapping or a sequence, got %s", kindName(node.Kind))
	}

	out := make(projectMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		var body struct {
			Description string  `yaml:"description"`
			Icon        string  `yaml:"icon"`
			Links       linkMap `yaml:"links"`
		}
		if err := val.Decode(&body); err != nil {
			return fmt.Errorf("project %q: %w", key.Value, err)
		}

		out = append(out, RawProject{
			Name:        key.Value,
			Description: body.Description,
			Icon:        body.Icon,
			Links:       body.Links,
		})
	}

	*pm = out
	return nil
}

// linkMap decodes the links mapping of one project. Each value is
// either a bare URL string or a mapping with link fields.
type linkMap []RawLink

func (lm *linkMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("links must be a mapping, got %s", kindName(node.Kind))
	}

	out := make(linkMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		link := RawLink{Name: key.Value}
		switch val.Kind {
		case yaml.ScalarNode:
			link.URL = val.Value
		case yaml.MappingNode:
			var body struct {
				URL         string   `yaml:"url"`
				Description string   `yaml:"description"`
				Private     bool     `yaml:"private"`
				Tags        []string `yaml:"tags"`
			}
			if err := val.Decode(&body); err != nil {
				return fmt.Errorf("link %q: %w", key.Value, err)
			}
			link.URL = body.URL
			link.Description = body.Description
			link.Private = body.Private
			link.Tags = body.Tags
		default:
			return fmt.Errorf("link %q: value must be a url string or a mapping, got %s",
				key.Value, kindName(val.Kind))
		}

		out = append(out, link)
	}

	*lm = out
	return nil
}

// rawProjects converts decoded legacy-sequence entries to RawProject.
func rawProjects(list []listProject) []RawProject {
	out := make([]RawProject, 0, len(list))
	for _, p := range list {
		project := RawProject{
			Name:        p.Project,
			Description: p.Description,
			Icon:        p.Icon,
		}
		for _, l := range p.Links {
			project.Links = append(project.Links, RawLink{
				Name:        l.Name,
				URL:         l.URL,
				Description: l.Description,
				Private:     l.Private,
				Tags:        l.Tags,
			})
		}
		out = append(out, project)
	}
	return out
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
