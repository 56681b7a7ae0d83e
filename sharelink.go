package linkpreview

import (
	"net/url"
	"strings"
)

// ShareLinkFunc adapts a plain function to the ShareLinkClassifier interface.
type ShareLinkFunc func(url string) bool

// IsShareLink calls f(url).
func (f ShareLinkFunc) IsShareLink(url string) bool {
	return f(url)
}

// Ensure ShareLinkPattern implements ShareLinkClassifier at compile time.
var _ ShareLinkClassifier = (*ShareLinkPattern)(nil)

// ShareLinkPattern recognizes first-party share links by host and path
// prefix, e.g. sticker-pack share URLs on a well-known host. Matching is
// deliberately narrow: https only, exact host (case-insensitive), and a
// fixed path prefix.
type ShareLinkPattern struct {
	host       string
	pathPrefix string
}

// NewShareLinkPattern creates a ShareLinkPattern for the given host and path
// prefix.
func NewShareLinkPattern(host, pathPrefix string) *ShareLinkPattern {
	return &ShareLinkPattern{host: host, pathPrefix: pathPrefix}
}

// IsShareLink reports whether rawURL is a share link for the configured host.
func (p *ShareLinkPattern) IsShareLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return u.Scheme == "https" &&
		strings.EqualFold(u.Host, p.host) &&
		strings.HasPrefix(u.Path, p.pathPrefix)
}
