// Package favicon derives favicon-service URLs from link URLs. It is
// pure string work: no icon is ever fetched at build time, the browser
// loads them when the page is viewed.
package favicon

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/linkboard/linkboard/internal/logger"
)

// Resolver builds favicon URLs from link hostnames. The service
// template is printf-style and receives the hostname only; path, query
// and scheme of the original link are never forwarded.
type Resolver struct {
	service string
	log     logger.Logger
}

// NewResolver creates a resolver for the given service template,
// ex: "https://icons.duckduckgo.com/ip3/%s.ico"
func NewResolver(service string, log logger.Logger) *Resolver {
	return &Resolver{
		service: service,
		log:     log,
	}
}

// Resolve returns the favicon URL for a link URL, or "" when no
// hostname can be extracted. A malformed link URL is not fatal: it is
// logged as a warning and the link simply renders without a favicon.
func (r *Resolver) Resolve(rawURL string) string {
	host := hostnameOf(rawURL)
	if host == "" {
		r.log.Warn("link url has no usable hostname, skipping favicon",
			logger.String("url", rawURL))
		return ""
	}
	return fmt.Sprintf(r.service, host)
}

// hostnameOf extracts the hostname from an absolute URL. Relative
// references and garbage like "not a url" parse without error but have
// no host, so the empty check covers both failure modes.
func hostnameOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
