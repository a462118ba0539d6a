package favicon

import (
	"testing"

	"github.com/linkboard/linkboard/internal/config"
	"github.com/linkboard/linkboard/internal/logger"
)

func TestResolve(t *testing.T) {
	r := NewResolver(config.DefaultFaviconService, logger.Nop())

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "https url",
			url:  "https://grafana.domain.ext/dashboards?id=3",
			want: "https://icons.duckduckgo.com/ip3/grafana.domain.ext.ico",
		},
		{
			name: "http url with port",
			url:  "http://10.0.0.2:8080/admin",
			want: "https://icons.duckduckgo.com/ip3/10.0.0.2.ico",
		},
		{
			name: "malformed url",
			url:  "not a url",
			want: "",
		},
		{
			name: "relative path",
			url:  "/just/a/path",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.url); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := NewResolver(config.DefaultFaviconService, logger.Nop())

	for _, u := range []string{"https://example.com/x", "not a url"} {
		first := r.Resolve(u)
		second := r.Resolve(u)
		if first != second {
			t.Errorf("Resolve(%q) not idempotent: %q then %q", u, first, second)
		}
	}
}

func TestResolveCustomService(t *testing.T) {
	r := NewResolver("https://icons.internal/%s.png", logger.Nop())

	got := r.Resolve("https://wiki.domain.ext")
	want := "https://icons.internal/wiki.domain.ext.png"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}
