// Package scaffold writes the starter config used when linkboard runs
// without an existing projects file.
package scaffold

import (
	"fmt"
	"os"
)

// WriteDefaultConfig creates a minimal example projects file at path.
func WriteDefaultConfig(path string) error {
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write default config %s: %w", path, err)
	}
	return nil
}

const defaultConfigYAML = `title: My Projects
projects:
  Example:
    description: A sample project to get you started. Edit this file and rerun linkboard.
    icon: "🚀"
    links:
      Homepage:
        url: https://example.com
        description: Replace me with your own links.
        tags: [sample]
`
