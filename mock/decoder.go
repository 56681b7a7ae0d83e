package mock

import "github.com/fwojciec/linkpreview"

var _ linkpreview.HTMLDecoder = (*HTMLDecoder)(nil)

// HTMLDecoder is a mock implementation of linkpreview.HTMLDecoder.
type HTMLDecoder struct {
	DecodeFn func(fragment string) string
}

func (d *HTMLDecoder) Decode(fragment string) string {
	return d.DecodeFn(fragment)
}

// IdentityDecoder returns an HTMLDecoder that passes fragments through
// unchanged, for tests that exercise extraction independent of decoding.
func IdentityDecoder() *HTMLDecoder {
	return &HTMLDecoder{DecodeFn: func(fragment string) string { return fragment }}
}
