package projects

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the projects YAML file
type Loader struct {
	filePath string
}

// NewLoader creates a new projects file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the projects file
func (l *Loader) Load() (*RawConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects file: %w", err)
	}

	return Parse(data)
}

// Parse decodes raw YAML text. The shape is discriminated on the root
// node kind: a sequence is the legacy list shape, a mapping is the
// current map shape. Anything else is a parse error.
func Parse(data []byte) (*RawConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse projects yaml: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// Empty file: an empty config, not an error.
		return &RawConfig{Shape: ShapeMap}, nil
	}

	body := root.Content[0]

	// A document that is only "---" or an explicit null decodes to a
	// null scalar root; treat it like a blank file.
	if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
		return &RawConfig{Shape: ShapeMap}, nil
	}

	switch body.Kind {
	case yaml.SequenceNode:
		var list []listProject
		if err := body.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to parse projects yaml: %w", err)
		}
		return fromListShape(list), nil

	case yaml.MappingNode:
		var doc mapDocument
		if err := body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse projects yaml: %w", err)
		}
		return &RawConfig{
			Shape:    ShapeMap,
			Title:    doc.Title,
			Projects: doc.Projects,
		}, nil

	default:
		return nil, fmt.Errorf("projects yaml must be a sequence or a mapping at the top level, got %s",
			kindName(body.Kind))
	}
}

func fromListShape(list []listProject) *RawConfig {
	return &RawConfig{
		Shape:    ShapeList,
		Projects: rawProjects(list),
	}
}
