package mock

import "github.com/fwojciec/linkpreview"

var _ linkpreview.ShareLinkClassifier = (*ShareLinkClassifier)(nil)

// ShareLinkClassifier is a mock implementation of
// linkpreview.ShareLinkClassifier.
type ShareLinkClassifier struct {
	IsShareLinkFn func(url string) bool
}

func (c *ShareLinkClassifier) IsShareLink(url string) bool {
	return c.IsShareLinkFn(url)
}
