// Package xurls provides a link detector built on the xurls URL-extraction
// regexps.
package xurls

import (
	"regexp"

	"mvdan.cc/xurls/v2"

	"github.com/fwojciec/linkpreview"
)

// Ensure Detector implements linkpreview.LinkDetector at compile time.
var _ linkpreview.LinkDetector = (*Detector)(nil)

// Detector finds URL-shaped spans in text. Matches are reported in order of
// appearance and never overlap.
type Detector struct {
	re *regexp.Regexp
}

// NewDetector creates a Detector that only matches URLs carrying a scheme
// (https://example.com but not example.com).
func NewDetector() *Detector {
	return &Detector{re: xurls.Strict()}
}

// NewRelaxedDetector creates a Detector that also matches schemeless spans
// like example.com, mirroring mobile autolinkers. Schemeless matches are
// still filtered out downstream by the https requirement.
func NewRelaxedDetector() *Detector {
	return &Detector{re: xurls.Relaxed()}
}

// DetectURLs returns every URL-shaped span in text with its byte offset.
func (d *Detector) DetectURLs(text string) []linkpreview.Link {
	locs := d.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	links := make([]linkpreview.Link, 0, len(locs))
	for _, loc := range locs {
		links = append(links, linkpreview.Link{
			URL:      text[loc[0]:loc[1]],
			Position: loc[0],
		})
	}

	return links
}
