package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/irpost"
)

// Ensure LoggingNewsExtractor implements irpost.NewsExtractor.
var _ irpost.NewsExtractor = (*LoggingNewsExtractor)(nil)

// LoggingNewsExtractor wraps a NewsExtractor with logging.
type LoggingNewsExtractor struct {
	next   irpost.NewsExtractor
	logger *slog.Logger
}

// NewLoggingNewsExtractor creates a new LoggingNewsExtractor.
func NewLoggingNewsExtractor(next irpost.NewsExtractor, logger *slog.Logger) *LoggingNewsExtractor {
	return &LoggingNewsExtractor{next: next, logger: logger}
}

// ExtractNews delegates to the wrapped extractor. A missing news section is
// logged as a warning.
func (e *LoggingNewsExtractor) ExtractNews(html string) *irpost.NewsIndex {
	begin := time.Now()
	index := e.next.ExtractNews(html)
	if !index.SectionFound {
		e.logger.Warn("news section not found", "bytes", len(html))
		return index
	}

	bare := 0
	for _, entry := range index.Entries {
		if _, ok := entry.(irpost.BareTimestamp); ok {
			bare++
		}
	}
	e.logger.Info("extract news",
		"entries", len(index.Entries),
		"bare", bare,
		"duration", time.Since(begin),
	)
	return index
}

// Ensure LoggingReleaseExtractor implements irpost.ReleaseExtractor.
var _ irpost.ReleaseExtractor = (*LoggingReleaseExtractor)(nil)

// LoggingReleaseExtractor wraps a ReleaseExtractor with logging.
type LoggingReleaseExtractor struct {
	next   irpost.ReleaseExtractor
	logger *slog.Logger
}

// NewLoggingReleaseExtractor creates a new LoggingReleaseExtractor.
func NewLoggingReleaseExtractor(next irpost.ReleaseExtractor, logger *slog.Logger) *LoggingReleaseExtractor {
	return &LoggingReleaseExtractor{next: next, logger: logger}
}

// ExtractRelease delegates to the wrapped extractor and logs which fields
// were found.
func (e *LoggingReleaseExtractor) ExtractRelease(html string) *irpost.Release {
	begin := time.Now()
	r := e.next.ExtractRelease(html)
	if r.Empty() {
		e.logger.Warn("press release not found", "bytes", len(html))
		return r
	}
	e.logger.Info("extract release",
		"title", r.Title != nil,
		"intro", r.Intro != nil,
		"body", r.Body != nil,
		"duration", time.Since(begin),
	)
	return r
}
