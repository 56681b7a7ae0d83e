package main

import (
	"fmt"
	"io"
	"os"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	text := c.Text
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	links := deps.Scanner.FindEligibleLinks(text)
	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No eligible links found.")
		return nil
	}

	for _, link := range links {
		fmt.Fprintf(deps.Stdout, "%d\t%s\n", link.Position, link.URL)
	}

	return nil
}
