// Package commonregex provides a link detector built on the commonregex
// pattern collection. It is an alternative to the xurls detector for
// programs already depending on commonregex.
package commonregex

import (
	cregex "github.com/mingrammer/commonregex"

	"github.com/fwojciec/linkpreview"
)

// Ensure Detector implements linkpreview.LinkDetector at compile time.
var _ linkpreview.LinkDetector = (*Detector)(nil)

// Detector finds URL-shaped spans in text using commonregex's link pattern.
// Like the pattern itself, it matches schemeless spans (example.com); the
// eligibility check downstream rejects those for lacking https.
type Detector struct{}

// NewDetector creates a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectURLs returns every URL-shaped span in text with its byte offset.
func (d *Detector) DetectURLs(text string) []linkpreview.Link {
	locs := cregex.LinkRegex.FindAllStringIndex(text, -1)
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
