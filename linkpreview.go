// Package linkpreview extracts safe link-preview metadata (title, image URL)
// from HTML documents and decides which URLs in a message are eligible for
// previewing at all. The eligibility check is a security boundary: it rejects
// domains that mix ASCII and non-ASCII scripts, the classic homograph
// spoofing trick, while still allowing fully non-Latin domains.
//
// This package contains domain types, collaborator interfaces, and the
// pattern-based core logic, following Ben Johnson's Standard Package Layout.
// Implementations of the collaborator interfaces live in subdirectories named
// after their primary dependency (e.g., xurls/, bluemonday/, http/).
package linkpreview

import "context"

// LinkDetector finds URL-shaped spans in free-form text.
// Implementations hide the autolinking heuristics; spans are reported in
// left-to-right order and never overlap.
type LinkDetector interface {
	// DetectURLs returns every web-URL-shaped span in text together with
	// its byte offset into text.
	DetectURLs(text string) []Link
}

// HTMLDecoder converts an HTML fragment to plain text.
// Implementations decode character references (&amp;, &#39;) and strip any
// embedded markup. Decoding is best-effort and must never fail on arbitrary
// input.
type HTMLDecoder interface {
	Decode(fragment string) string
}

// ShareLinkClassifier reports whether a URL is a first-party share link
// (e.g. a sticker-pack share URL) that is allowed to bypass the generic
// scheme and domain checks.
type ShareLinkClassifier interface {
	IsShareLink(url string) bool
}

// EligibilityChecker decides whether a URL may be fetched and previewed.
type EligibilityChecker interface {
	IsEligible(url string) bool
}

// LinkScanner finds preview-eligible links in message text.
type LinkScanner interface {
	FindEligibleLinks(text string) []Link
}

// Fetcher retrieves an HTML document for a previewable URL.
// The fetch happens outside the extraction core; implementations own
// timeouts, cancellation, and response size limits.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (html string, err error)
}
