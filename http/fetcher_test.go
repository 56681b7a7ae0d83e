package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/linkpreview"
	lphttp "github.com/fwojciec/linkpreview/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the document body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<html><title>Hi</title></html>`))
		}))
		defer srv.Close()

		f := lphttp.NewFetcher()
		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, `<html><title>Hi</title></html>`, html)
	})

	t.Run("rejects non-200 responses", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		f := lphttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, linkpreview.EUNAVAILABLE, linkpreview.ErrorCode(err))
	})

	t.Run("rejects non-HTML content types", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7"))
		}))
		defer srv.Close()

		f := lphttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, linkpreview.EINVALID, linkpreview.ErrorCode(err))
	})

	t.Run("truncates oversized bodies", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer srv.Close()

		f := lphttp.NewFetcher(lphttp.WithMaxBodySize(16))
		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, html, 16)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := lphttp.NewFetcher()
		_, err := f.Fetch(ctx, srv.URL)

		require.Error(t, err)
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		f := lphttp.NewFetcher()
		_, err := f.Fetch(context.Background(), "http://exa mple.com\x7f")

		require.Error(t, err)
		assert.Equal(t, linkpreview.EINVALID, linkpreview.ErrorCode(err))
	})
}
