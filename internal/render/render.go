// Package render turns a canonical config into one self-contained HTML
// document. CSS and the search/filter script are inlined; the only
// external references in the output are link hrefs and favicon URLs.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/linkboard/linkboard/internal/domain"
	"github.com/linkboard/linkboard/internal/favicon"
)

// Options controls rendering behavior.
type Options struct {
	// Unsafe disables sanitization of rendered Markdown descriptions.
	Unsafe bool
}

// Renderer builds the HTML document. Rendering performs no I/O and is
// a pure function of the config: identical configs produce identical
// output bytes.
type Renderer struct {
	favicons *favicon.Resolver
	opts     Options
}

// New creates a renderer using the given favicon resolver.
func New(favicons *favicon.Resolver, opts Options) *Renderer {
	return &Renderer{
		favicons: favicons,
		opts:     opts,
	}
}

// pageData is the root template payload.
type pageData struct {
	Title    string
	Tags     []string
	Projects []projectView
}

type projectView struct {
	Name        string
	IconURL     string // set when the icon is an http(s) image URL
	IconText    string // set otherwise (emoji or plain text)
	Description template.HTML
	Links       []linkView
}

type linkView struct {
	Name        string
	URL         string
	Favicon     string
	Private     bool
	Description template.HTML
	Tags        []string

	// SearchText and TagData feed the client-side filter via data
	// attributes: lowercased searchable text, and tags joined with
	// newlines so the script can split without guessing a delimiter.
	SearchText string
	TagData    string
}

// Document renders the complete HTML page for a config.
func (r *Renderer) Document(cfg *domain.Config) (string, error) {
	page := pageData{
		Title: cfg.Title,
		Tags:  cfg.AllTags(),
	}
	if page.Title == "" {
		page.Title = "Projects"
	}

	for _, project := range cfg.Projects {
		pv := projectView{Name: project.Name}

		if isImageURL(project.Icon) {
			pv.IconURL = project.Icon
		} else {
			pv.IconText = project.Icon
		}

		desc, err := renderDescription(project.Description, r.opts.Unsafe)
		if err != nil {
			return "", fmt.Errorf("project %q: %w", project.Name, err)
		}
		pv.Description = desc

		for _, link := range project.Links {
			lv := linkView{
				Name:       link.Name,
				URL:        link.URL,
				Favicon:    r.favicons.Resolve(link.URL),
				Private:    link.Private,
				Tags:       link.Tags,
				SearchText: searchText(link),
				TagData:    strings.Join(link.Tags, "\n"),
			}

			lv.Description, err = renderDescription(link.Description, r.opts.Unsafe)
			if err != nil {
				return "", fmt.Errorf("project %q, link %q: %w", project.Name, link.Name, err)
			}

			pv.Links = append(pv.Links, lv)
		}

		page.Projects = append(page.Projects, pv)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to execute page template: %w", err)
	}
	return buf.String(), nil
}

// isImageURL reports whether an icon string should render as an inline
// image rather than literal text.
func isImageURL(icon string) bool {
	return strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://")
}

// searchText builds the lowercased haystack the search box matches
// against: link name, description, and tags.
func searchText(link domain.Link) string {
	parts := make([]string, 0, 2+len(link.Tags))
	parts = append(parts, link.Name)
	if link.Description != "" {
		parts = append(parts, link.Description)
	}
	parts = append(parts, link.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
