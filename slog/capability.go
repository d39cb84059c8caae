package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vikramardham/mcplibrary"
)

var _ mcplibrary.Categorizer = (*LoggingCategorizer)(nil)

// LoggingCategorizer wraps a Categorizer with call logging. Failures log
// at warn level because the caller is expected to fall back, not abort.
type LoggingCategorizer struct {
	next   mcplibrary.Categorizer
	logger *slog.Logger
}

// NewLoggingCategorizer creates a new LoggingCategorizer.
func NewLoggingCategorizer(next mcplibrary.Categorizer, logger *slog.Logger) *LoggingCategorizer {
	return &LoggingCategorizer{next: next, logger: logger}
}

// Categorize delegates to the wrapped categorizer.
func (c *LoggingCategorizer) Categorize(ctx context.Context, baseURL string, items []mcplibrary.LinkItem) ([]mcplibrary.CategoryGroup, error) {
	begin := time.Now()
	groups, err := c.next.Categorize(ctx, baseURL, items)
	if err != nil {
		c.logger.Warn("categorization failed, caller will fall back",
			"baseURL", baseURL,
			"items", len(items),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	c.logger.Info("categorization",
		"baseURL", baseURL,
		"items", len(items),
		"categories", len(groups),
		"duration", time.Since(begin),
	)
	return groups, nil
}

var _ mcplibrary.Ranker = (*LoggingRanker)(nil)

// LoggingRanker wraps a Ranker with call logging.
type LoggingRanker struct {
	next   mcplibrary.Ranker
	logger *slog.Logger
}

// NewLoggingRanker creates a new LoggingRanker.
func NewLoggingRanker(next mcplibrary.Ranker, logger *slog.Logger) *LoggingRanker {
	return &LoggingRanker{next: next, logger: logger}
}

// Rank delegates to the wrapped ranker.
func (r *LoggingRanker) Rank(ctx context.Context, query string, candidates []mcplibrary.LinkItem) ([]mcplibrary.ScoredLink, error) {
	begin := time.Now()
	scored, err := r.next.Rank(ctx, query, candidates)
	if err != nil {
		r.logger.Warn("ranking failed, caller will fall back",
			"query", query,
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	r.logger.Debug("ranking",
		"query", query,
		"candidates", len(candidates),
		"scored", len(scored),
		"duration", time.Since(begin),
	)
	return scored, nil
}
