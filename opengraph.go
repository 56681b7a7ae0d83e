package linkpreview

import "regexp"

var (
	openGraphTagPattern     = regexp.MustCompile(`(?i)<\s*meta[^>]*property\s*=\s*"\s*og:([^"]+)"[^>]*/?\s*>`)
	openGraphContentPattern = regexp.MustCompile(`(?i)content\s*=\s*"([^"]*)"`)
	titlePattern            = regexp.MustCompile(`(?i)<\s*title[^>]*>(.*)<\s*/title[^>]*>`)
	faviconPattern          = regexp.MustCompile(`(?i)<\s*link[^>]*rel\s*=\s*".*icon.*"[^>]*>`)
	faviconHrefPattern      = regexp.MustCompile(`(?i)href\s*=\s*"([^"]*)"`)
)

// Extractor pulls Open Graph metadata out of raw HTML. It runs a fixed set
// of independent regexp scans rather than building a DOM, so arbitrarily
// malformed or truncated input degrades to missing fields, never to an
// error. Angle brackets inside quoted attribute values next to a scanned tag
// can confuse the patterns; that is a known limitation of the approach.
type Extractor struct {
	decoder HTMLDecoder
}

// NewExtractor creates an Extractor. Open Graph content values are passed
// through decoder before they are stored; decoder must not be nil.
func NewExtractor(decoder HTMLDecoder) *Extractor {
	return &Extractor{decoder: decoder}
}

// Extract scans html and returns its Open Graph metadata. An empty document
// yields an empty result: no tags, no fallbacks, no error.
//
// Three independent passes run over the document: og:* meta tags (the last
// occurrence of a property wins), the first <title> element (inner text kept
// verbatim), and the first <link> whose rel value contains "icon" (href kept
// verbatim). Only og content values go through the HTML decoder.
func (e *Extractor) Extract(html string) OpenGraph {
	if html == "" {
		return OpenGraph{}
	}

	tags := make(map[string]string)
	for _, loc := range openGraphTagPattern.FindAllStringSubmatchIndex(html, -1) {
		tag := html[loc[0]:loc[1]]
		property := html[loc[2]:loc[3]]

		if m := openGraphContentPattern.FindStringSubmatch(tag); m != nil {
			tags[property] = e.decoder.Decode(m[1])
		}
	}

	htmlTitle := ""
	if m := titlePattern.FindStringSubmatch(html); m != nil {
		htmlTitle = m[1]
	}

	faviconURL := ""
	if tag := faviconPattern.FindString(html); tag != "" {
		if m := faviconHrefPattern.FindStringSubmatch(tag); m != nil {
			faviconURL = m[1]
		}
	}

	return OpenGraph{
		tags:       tags,
		htmlTitle:  htmlTitle,
		faviconURL: faviconURL,
	}
}

// OpenGraph is a read-only view over the metadata extracted from one HTML
// document. The zero value represents a document with no metadata.
type OpenGraph struct {
	tags       map[string]string
	htmlTitle  string
	faviconURL string
}

// Title returns the best title for the document: the og:title value when
// present, otherwise the <title> fallback. The second return value is false
// when neither is available. Empty values count as absent.
func (og OpenGraph) Title() (string, bool) {
	return firstNonEmpty(og.tags["title"], og.htmlTitle)
}

// ImageURL returns the best image URL for the document: the og:image value
// when present, otherwise the favicon fallback. The second return value is
// false when neither is available. Empty values count as absent.
func (og OpenGraph) ImageURL() (string, bool) {
	return firstNonEmpty(og.tags["image"], og.faviconURL)
}

// Tag returns the decoded value of an Open Graph property by its short name
// (e.g. "description" for og:description). Empty values count as absent.
func (og OpenGraph) Tag(name string) (string, bool) {
	return firstNonEmpty(og.tags[name])
}

func firstNonEmpty(values ...string) (string, bool) {
	for _, v := range values {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
