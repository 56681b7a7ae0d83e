// Package bluemonday provides an HTML decoder built on the bluemonday
// sanitizer: embedded markup is stripped with the strict policy, then HTML
// character references are decoded to literal characters.
package bluemonday

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/fwojciec/linkpreview"
)

// Ensure Decoder implements linkpreview.HTMLDecoder at compile time.
var _ linkpreview.HTMLDecoder = (*Decoder)(nil)

// Decoder converts HTML fragments to plain text. It never fails; arbitrary
// input degrades to best-effort text.
type Decoder struct {
	policy *bluemonday.Policy
}

// NewDecoder creates a Decoder using bluemonday's strict policy, which
// allows no elements at all.
func NewDecoder() *Decoder {
	return &Decoder{policy: bluemonday.StrictPolicy()}
}

// Decode strips markup from fragment and decodes character references.
// Stripping runs first so references decoded to markup characters (&lt;b&gt;)
// survive as text instead of being re-interpreted as tags.
func (d *Decoder) Decode(fragment string) string {
	return html.UnescapeString(d.policy.Sanitize(fragment))
}
