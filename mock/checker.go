package mock

import "github.com/fwojciec/linkpreview"

var _ linkpreview.EligibilityChecker = (*EligibilityChecker)(nil)

// EligibilityChecker is a mock implementation of
// linkpreview.EligibilityChecker.
type EligibilityChecker struct {
	IsEligibleFn func(url string) bool
}

func (c *EligibilityChecker) IsEligible(url string) bool {
	return c.IsEligibleFn(url)
}
