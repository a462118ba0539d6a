package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderDescription converts a Markdown description into HTML ready
// for inlining. Unless unsafe is set, the result is sanitized so an
// untrusted config file cannot inject script into the generated page.
func renderDescription(src string, unsafe bool) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render description markdown: %w", err)
	}

	out := buf.Bytes()
	if !unsafe {
		out = htmlSanitizer.SanitizeBytes(out)
	}
	return template.HTML(strings.TrimSpace(string(out))), nil
}
