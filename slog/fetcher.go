// Package slog provides log/slog decorators for the irpost services.
package slog

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/irpost"
)

// Ensure LoggingFetcher implements irpost.Fetcher.
var _ irpost.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetched during a run. Pages are numbered
// in fetch order: the IR index is page 1 and the selected article page 2.
type LoggingFetcher struct {
	next   irpost.Fetcher
	logger *slog.Logger
	pages  atomic.Int64
}

// NewLoggingFetcher creates a new LoggingFetcher. The logger normally
// carries the run ID.
func NewLoggingFetcher(next irpost.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome. A fetch cut
// short by the operator interrupting the run is logged as a warning.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	page := f.pages.Add(1)
	defer func(begin time.Time) {
		attrs := []any{
			"page", page,
			"url", url,
			"duration", time.Since(begin),
		}
		switch {
		case errors.Is(err, context.Canceled):
			f.logger.Warn("fetch canceled", attrs...)
		case err != nil:
			f.logger.Error("fetch", append(attrs, "code", irpost.ErrorCode(err), "err", err)...)
		default:
			f.logger.Info("fetch", append(attrs, "bytes", len(html))...)
		}
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close closes the wrapped fetcher and logs how many pages the run fetched.
func (f *LoggingFetcher) Close() error {
	if err := f.next.Close(); err != nil {
		f.logger.Error("close fetcher", "pages", f.pages.Load(), "err", err)
		return err
	}
	f.logger.Info("close fetcher", "pages", f.pages.Load())
	return nil
}
