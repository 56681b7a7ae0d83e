// Package http provides an HTTP-based implementation of linkpreview.Fetcher.
// It is the fetch collaborator that sits between the eligibility check and
// the Open Graph extraction; timeouts, cancellation, and response size
// limits live here, not in the extraction core.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/linkpreview"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read. Documents
// can be arbitrarily large; preview metadata lives in the head, so reading
// past the cap buys nothing.
const DefaultMaxBodySize = 1 << 20 // 1 MiB

// Ensure Fetcher implements linkpreview.Fetcher at compile time.
var _ linkpreview.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents over HTTP.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets how many bytes of the response body are read.
// Defaults to DefaultMaxBodySize (1 MiB) if not specified.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML document at url. Non-HTML responses are rejected;
// bodies larger than the configured cap are truncated, which is safe for
// preview extraction since the interesting tags sit in the document head.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", linkpreview.Errorf(linkpreview.EINVALID, "invalid request for %q: %s", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", linkpreview.Errorf(linkpreview.EUNAVAILABLE, "fetch %q: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", linkpreview.Errorf(linkpreview.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "text/html") {
		return "", linkpreview.Errorf(linkpreview.EINVALID, "unsupported content type %q for %s", ct, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", linkpreview.Errorf(linkpreview.EUNAVAILABLE, "read %q: %s", url, err)
	}

	return string(body), nil
}
