package mock

import "github.com/fwojciec/linkpreview"

var _ linkpreview.LinkScanner = (*LinkScanner)(nil)

// LinkScanner is a mock implementation of linkpreview.LinkScanner.
type LinkScanner struct {
	FindEligibleLinksFn func(text string) []linkpreview.Link
}

func (s *LinkScanner) FindEligibleLinks(text string) []linkpreview.Link {
	return s.FindEligibleLinksFn(text)
}
