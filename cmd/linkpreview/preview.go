package main

import (
	"fmt"

	"github.com/fwojciec/linkpreview"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	if !deps.Checker.IsEligible(c.URL) {
		return linkpreview.Errorf(linkpreview.EINVALID, "url %q is not eligible for previewing", c.URL)
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkpreview.ErrorMessage(err))
		return err
	}

	og := deps.Extractor.Extract(html)

	title, hasTitle := og.Title()
	image, hasImage := og.ImageURL()

	if !hasTitle && !hasImage {
		fmt.Fprintln(deps.Stdout, "No preview metadata found.")
		return nil
	}

	if hasTitle {
		fmt.Fprintf(deps.Stdout, "title\t%s\n", title)
	}
	if hasImage {
		fmt.Fprintf(deps.Stdout, "image\t%s\n", image)
	}

	return nil
}
