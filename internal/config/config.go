package config

import (
	"os"
	"strconv"
)

// Config holds process-level settings. These are ambient knobs (logging,
// favicon service, preview server address), not the YAML projects file,
// which is domain input handled by internal/sources.
type Config struct {
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// FaviconService is a printf-style template receiving the link's
	// hostname, ex: "https://icons.duckduckgo.com/ip3/%s.ico"
	FaviconService string

	// UnsafeHTML disables sanitization of rendered Markdown descriptions.
	UnsafeHTML bool

	ListenAddr string // preview server address, ex: ":1313"
}

const DefaultFaviconService = "https://icons.duckduckgo.com/ip3/%s.ico"

func Load() *Config {
	return &Config{
		LogLevel:  getenv("LINKBOARD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKBOARD_PRETTY_LOG", true),

		FaviconService: getenv("LINKBOARD_FAVICON_SERVICE", DefaultFaviconService),
		UnsafeHTML:     mustBool("LINKBOARD_UNSAFE_HTML", false),

		ListenAddr: getenv("LINKBOARD_LISTEN_ADDR", ":1313"),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
