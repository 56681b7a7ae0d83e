// Package slog provides logging decorators for linkpreview services,
// built on the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkpreview"
)

// Ensure LoggingLinkScanner implements linkpreview.LinkScanner.
var _ linkpreview.LinkScanner = (*LoggingLinkScanner)(nil)

// LoggingLinkScanner wraps a LinkScanner with debug logging.
type LoggingLinkScanner struct {
	next   linkpreview.LinkScanner
	logger *slog.Logger
}

// NewLoggingLinkScanner creates a new LoggingLinkScanner.
func NewLoggingLinkScanner(next linkpreview.LinkScanner, logger *slog.Logger) *LoggingLinkScanner {
	return &LoggingLinkScanner{next: next, logger: logger}
}

// FindEligibleLinks delegates to the wrapped scanner and logs the operation.
func (s *LoggingLinkScanner) FindEligibleLinks(text string) (links []linkpreview.Link) {
	defer func(begin time.Time) {
		s.logger.Info("link scan",
			"text_len", len(text),
			"count", len(links),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindEligibleLinks(text)
}
