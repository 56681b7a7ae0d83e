package main

import (
	"fmt"

	"github.com/fwojciec/linkpreview"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if !deps.Checker.IsEligible(c.URL) {
		fmt.Fprintf(deps.Stdout, "ineligible\t%s\n", c.URL)
		return linkpreview.Errorf(linkpreview.EINVALID, "url %q is not eligible for previewing", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "eligible\t%s\n", c.URL)
	return nil
}
