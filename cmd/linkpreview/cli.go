package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/linkpreview"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scanner   linkpreview.LinkScanner
	Checker   linkpreview.EligibilityChecker
	Fetcher   linkpreview.Fetcher
	Extractor *linkpreview.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Enable debug logging"`
	Timeout   time.Duration `default:"10s" help:"HTTP fetch timeout"`
	MaxBody   int64         `name:"max-body" default:"1048576" help:"Maximum response body bytes to read"`
	ShareHost string        `name:"share-host" help:"First-party share-link host allowed to bypass the https check"`
	SharePath string        `name:"share-path" default:"/" help:"Path prefix for first-party share links"`

	Scan    ScanCmd    `cmd:"" help:"Find preview-eligible links in text"`
	Check   CheckCmd   `cmd:"" help:"Check whether a URL is eligible for previewing"`
	Preview PreviewCmd `cmd:"" help:"Fetch a URL and print its preview metadata"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Text string `arg:"" optional:"" help:"Text to scan; reads stdin when omitted"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL string `arg:"" help:"URL to check"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL string `arg:"" help:"URL to fetch and extract metadata from"`
}
