package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/linkpreview"
	"github.com/fwojciec/linkpreview/bluemonday"
	lphttp "github.com/fwojciec/linkpreview/http"
	lpslog "github.com/fwojciec/linkpreview/slog"
	"github.com/fwojciec/linkpreview/xurls"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkpreview"),
		kong.Description("Scan text for preview-eligible links and extract Open Graph metadata"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies. The share-link allow list is empty unless a host
	// was configured.
	var shareLinks linkpreview.ShareLinkClassifier
	if cli.ShareHost != "" {
		shareLinks = linkpreview.NewShareLinkPattern(cli.ShareHost, cli.SharePath)
	}

	checker := linkpreview.NewChecker(shareLinks)
	deps.Checker = checker
	deps.Scanner = linkpreview.NewScanner(xurls.NewDetector(), checker)
	deps.Fetcher = lphttp.NewFetcher(
		lphttp.WithTimeout(cli.Timeout),
		lphttp.WithMaxBodySize(cli.MaxBody),
	)
	deps.Extractor = linkpreview.NewExtractor(bluemonday.NewDecoder())

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Scanner = lpslog.NewLoggingLinkScanner(deps.Scanner, logger)
		deps.Fetcher = lpslog.NewLoggingFetcher(deps.Fetcher, logger)
	}

	return kctx.Run(deps)
}
