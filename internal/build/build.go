// Package build is the orchestrator: it resolves the config file,
// scaffolds a default one when appropriate, runs the parse and render
// steps, and writes the output document.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linkboard/linkboard/internal/domain"
	"github.com/linkboard/linkboard/internal/favicon"
	"github.com/linkboard/linkboard/internal/logger"
	"github.com/linkboard/linkboard/internal/render"
	"github.com/linkboard/linkboard/internal/scaffold"
	"github.com/linkboard/linkboard/internal/sources/projects"
)

const (
	// DefaultConfigFile is used when no path argument is given.
	DefaultConfigFile = "projects.yaml"

	// OutputFile is written next to the config file.
	OutputFile = "index.html"
)

// Options configures one pipeline run.
type Options struct {
	// ConfigPath is the projects file. Empty means DefaultConfigFile
	// in the working directory.
	ConfigPath string

	// Explicit marks a path that came from the command line. A missing
	// explicit path is an error; a missing default path is scaffolded.
	Explicit bool

	// FaviconService is the printf-style favicon URL template.
	FaviconService string

	// UnsafeHTML disables sanitization of rendered descriptions.
	UnsafeHTML bool
}

// Pipeline runs the whole config-to-HTML transformation once.
type Pipeline struct {
	opts Options
	log  logger.Logger
}

func New(opts Options, log logger.Logger) *Pipeline {
	return &Pipeline{
		opts: opts,
		log:  log,
	}
}

// ConfigPath returns the effective config file path.
func (p *Pipeline) ConfigPath() string {
	if p.opts.ConfigPath == "" {
		return DefaultConfigFile
	}
	return p.opts.ConfigPath
}

// OutputPath returns where the rendered document is written.
func (p *Pipeline) OutputPath() string {
	return filepath.Join(filepath.Dir(p.ConfigPath()), OutputFile)
}

// Run executes the pipeline and returns the output path. No output
// file is touched when any earlier step fails.
func (p *Pipeline) Run() (string, error) {
	path := p.ConfigPath()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat config file: %w", err)
		}
		if p.opts.Explicit {
			return "", fmt.Errorf("config file %s not found", path)
		}
		p.log.Infof("no %s found, creating a starter config", path)
		if err := scaffold.WriteDefaultConfig(path); err != nil {
			return "", err
		}
	}

	cfg, err := p.load(path)
	if err != nil {
		return "", err
	}
	p.log.Info("config loaded",
		logger.String("file", path),
		logger.Int("projects", len(cfg.Projects)),
		logger.Int("links", cfg.LinkCount()),
	)

	resolver := favicon.NewResolver(p.opts.FaviconService, p.log)
	renderer := render.New(resolver, render.Options{Unsafe: p.opts.UnsafeHTML})

	html, err := renderer.Document(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}

	out := p.OutputPath()
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}

	return out, nil
}

func (p *Pipeline) load(path string) (*domain.Config, error) {
	raw, err := projects.NewLoader(path).Load()
	if err != nil {
		return nil, err
	}
	return projects.NewMapper().Map(raw)
}
