package mock

import "github.com/fwojciec/linkpreview"

var _ linkpreview.LinkDetector = (*LinkDetector)(nil)

// LinkDetector is a mock implementation of linkpreview.LinkDetector.
type LinkDetector struct {
	DetectURLsFn func(text string) []linkpreview.Link
}

func (d *LinkDetector) DetectURLs(text string) []linkpreview.Link {
	return d.DetectURLsFn(text)
}
