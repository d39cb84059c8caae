package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/mock"
	mcpslog "github.com/Vikramardham/mcplibrary/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*stdslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
	return logger, &buf
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetch and returns HTML", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		f := mcpslog.NewLoggingFetcher(next, logger)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "https://example.com")
		assert.Contains(t, buf.String(), "bytes=13")
	})

	t.Run("logs failure and propagates error", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", &mcplibrary.HTTPError{URL: url, StatusCode: 503}
			},
		}

		f := mcpslog.NewLoggingFetcher(next, logger)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
		assert.Contains(t, buf.String(), "503")
	})
}

func TestLoggingCategorizer_Categorize(t *testing.T) {
	t.Parallel()

	t.Run("logs category count on success", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.Categorizer{
			CategorizeFn: func(ctx context.Context, baseURL string, items []mcplibrary.LinkItem) ([]mcplibrary.CategoryGroup, error) {
				return []mcplibrary.CategoryGroup{{Name: "Guides"}, {Name: "API"}}, nil
			},
		}

		c := mcpslog.NewLoggingCategorizer(next, logger)
		groups, err := c.Categorize(context.Background(), "https://example.com", []mcplibrary.LinkItem{{URL: "https://example.com/a"}})

		require.NoError(t, err)
		assert.Len(t, groups, 2)
		assert.Contains(t, buf.String(), "categories=2")
	})

	t.Run("logs fallback warning on failure", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.Categorizer{
			CategorizeFn: func(ctx context.Context, baseURL string, items []mcplibrary.LinkItem) ([]mcplibrary.CategoryGroup, error) {
				return nil, mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "model unavailable")
			},
		}

		c := mcpslog.NewLoggingCategorizer(next, logger)
		_, err := c.Categorize(context.Background(), "https://example.com", []mcplibrary.LinkItem{{URL: "https://example.com/a"}})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fall back")
	})
}

func TestLoggingRanker_Rank(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()
	next := &mock.Ranker{
		RankFn: func(ctx context.Context, query string, candidates []mcplibrary.LinkItem) ([]mcplibrary.ScoredLink, error) {
			return []mcplibrary.ScoredLink{{URL: candidates[0].URL, Score: 0.9}}, nil
		},
	}

	r := mcpslog.NewLoggingRanker(next, logger)
	scored, err := r.Rank(context.Background(), "install", []mcplibrary.LinkItem{{URL: "https://example.com/install"}})

	require.NoError(t, err)
	assert.Len(t, scored, 1)
	assert.Contains(t, buf.String(), "scored=1")
}
