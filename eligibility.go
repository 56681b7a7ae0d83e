package linkpreview

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	domainPattern      = regexp.MustCompile(`^(https?://)?([^/]+).*$`)
	allASCIIPattern    = regexp.MustCompile(`^[\x00-\x7F]*$`)
	allNonASCIIPattern = regexp.MustCompile(`^[^\x00-\x7F]*$`)
)

// Ensure Checker implements EligibilityChecker at compile time.
var _ EligibilityChecker = (*Checker)(nil)

// Checker decides whether a URL is safe to fetch and preview.
// URLs must use https and pass the domain script-homogeneity check, unless
// the ShareLinkClassifier recognizes them as first-party share links.
type Checker struct {
	shareLinks ShareLinkClassifier
}

// NewChecker creates a Checker. shareLinks may be nil, in which case no URL
// receives the share-link bypass.
func NewChecker(shareLinks ShareLinkClassifier) *Checker {
	return &Checker{shareLinks: shareLinks}
}

// IsEligible reports whether rawURL may be previewed.
//
// First-party share links are eligible unconditionally. This bypass is kept
// as an explicit early return so the security-relevant path stays auditable.
func (c *Checker) IsEligible(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	if c.shareLinks != nil && c.shareLinks.IsShareLink(rawURL) {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return u.IsAbs() &&
		u.Scheme == "https" &&
		IsLegalDomain(rawURL)
}

// IsLegalDomain reports whether the URL's domain is script-homogeneous:
// after stripping dots it must be entirely ASCII or entirely non-ASCII.
// Mixed-script domains (Latin letters interleaved with Cyrillic or Greek
// look-alikes) are rejected to defend against homograph spoofing.
func IsLegalDomain(rawURL string) bool {
	m := domainPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return false
	}

	domain := strings.ReplaceAll(m[2], ".", "")

	return allASCIIPattern.MatchString(domain) ||
		allNonASCIIPattern.MatchString(domain)
}
