package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/linkpreview/mock"
	lpslog "github.com/fwojciec/linkpreview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		f := lpslog.NewLoggingFetcher(inner, logger)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		output := buf.String()
		assert.Contains(t, output, "document fetch")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "size=13")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection failed")
			},
		}

		f := lpslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}
