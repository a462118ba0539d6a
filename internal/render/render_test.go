package render

import (
	"strings"
	"testing"

	"github.com/linkboard/linkboard/internal/config"
	"github.com/linkboard/linkboard/internal/domain"
	"github.com/linkboard/linkboard/internal/favicon"
	"github.com/linkboard/linkboard/internal/logger"
)

func newTestRenderer(opts Options) *Renderer {
	return New(favicon.NewResolver(config.DefaultFaviconService, logger.Nop()), opts)
}

func TestDocumentBasic(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{
				Name: "P",
				Links: []domain.Link{
					{Name: "L", URL: "https://example.com"},
				},
			},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		">P</h2>",
		`href="https://example.com"`,
		">L</div>",
		"icons.duckduckgo.com/ip3/example.com.ico",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Document() output missing %q", want)
		}
	}
}

func TestDocumentTitleFallback(t *testing.T) {
	html, err := newTestRenderer(Options{}).Document(&domain.Config{})
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if !strings.Contains(html, "<title>Projects</title>") {
		t.Error("empty config title should fall back to Projects")
	}

	html, err = newTestRenderer(Options{}).Document(&domain.Config{Title: "My Stuff"})
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if !strings.Contains(html, "<title>My Stuff</title>") {
		t.Error("config title should end up in <title>")
	}
}

func TestDocumentPrivateBadgeAndTags(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{
				Name: "P",
				Links: []domain.Link{
					{Name: "L", URL: "https://example.com", Private: true, Tags: []string{"x", "y"}},
				},
			},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if !strings.Contains(html, `<span class="badge private">private</span>`) {
		t.Error("private link should render a private badge")
	}
	if !strings.Contains(html, `<span class="chip">x</span>`) || !strings.Contains(html, `<span class="chip">y</span>`) {
		t.Error("tags should render as chips")
	}
}

func TestDocumentTagDropdown(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{
				Name: "A",
				Links: []domain.Link{
					{Name: "a", URL: "https://a.example.com", Tags: []string{"beta", "alpha"}},
				},
			},
			{
				Name: "B",
				Links: []domain.Link{
					{Name: "b", URL: "https://b.example.com", Tags: []string{"alpha", "gamma"}},
				},
			},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	beta := strings.Index(html, `<option value="beta">`)
	alpha := strings.Index(html, `<option value="alpha">`)
	gamma := strings.Index(html, `<option value="gamma">`)
	if beta == -1 || alpha == -1 || gamma == -1 {
		t.Fatal("tag dropdown missing options")
	}
	if !(beta < alpha && alpha < gamma) {
		t.Errorf("tag options not in first-seen order: beta=%d alpha=%d gamma=%d", beta, alpha, gamma)
	}
	if strings.Count(html, `<option value="alpha">`) != 1 {
		t.Error("duplicate tags should appear once in the dropdown")
	}
}

func TestDocumentIconRendering(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{Name: "Emoji", Icon: "🚀", Links: []domain.Link{{Name: "l", URL: "https://e.example.com"}}},
			{Name: "Image", Icon: "https://cdn.example.com/logo.png", Links: []domain.Link{{Name: "l", URL: "https://i.example.com"}}},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if !strings.Contains(html, `<span class="project-icon">🚀</span>`) {
		t.Error("emoji icon should render as text")
	}
	if !strings.Contains(html, `<img class="project-icon" src="https://cdn.example.com/logo.png"`) {
		t.Error("http(s) icon should render as an image")
	}
}

func TestDocumentMalformedLinkURL(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{Name: "P", Links: []domain.Link{{Name: "L", URL: "not a url"}}},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	// Link still renders, just without a favicon.
	if !strings.Contains(html, ">L</div>") {
		t.Error("link with malformed url should still render")
	}
	if strings.Contains(html, `class="favicon"`) {
		t.Error("malformed url should not produce a favicon image")
	}
}

func TestDocumentDeterministic(t *testing.T) {
	cfg := &domain.Config{
		Title: "T",
		Projects: []domain.Project{
			{
				Name:        "P",
				Description: "Some *markdown* here",
				Links: []domain.Link{
					{Name: "L", URL: "https://example.com", Tags: []string{"x"}},
				},
			},
		},
	}

	r := newTestRenderer(Options{})
	first, err := r.Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	second, err := r.Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if first != second {
		t.Error("Document() is not deterministic for identical configs")
	}
}

func TestDocumentEscapesUserStrings(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{
				Name: "<script>alert(1)</script>",
				Links: []domain.Link{
					{Name: "L", URL: "https://example.com"},
				},
			},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("project name should be HTML-escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped project name should still be present as text")
	}
}

func TestDocumentSanitizesDescriptions(t *testing.T) {
	cfg := &domain.Config{
		Projects: []domain.Project{
			{
				Name:        "P",
				Description: `hello <script>alert(1)</script> **world**`,
				Links:       []domain.Link{{Name: "L", URL: "https://example.com"}},
			},
		},
	}

	html, err := newTestRenderer(Options{}).Document(cfg)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if strings.Contains(html, "<script>alert(1)") {
		t.Error("description script should be sanitized away")
	}
	if !strings.Contains(html, "<strong>world</strong>") {
		t.Error("markdown in description should be rendered")
	}
}
