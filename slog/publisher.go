package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/irpost"
)

// Ensure LoggingPublisher implements irpost.Publisher.
var _ irpost.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with logging.
type LoggingPublisher struct {
	next   irpost.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next irpost.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the outcome.
func (p *LoggingPublisher) Publish(ctx context.Context, post *irpost.Post) (published *irpost.PublishedPost, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"title", post.Title,
			"bytes", len(post.Content),
			"duration", time.Since(begin),
		}
		if err != nil {
			p.logger.Error("publish", append(attrs, "code", irpost.ErrorCode(err), "err", err)...)
			return
		}
		p.logger.Info("publish", append(attrs, "id", published.ID, "link", published.Link)...)
	}(time.Now())
	return p.next.Publish(ctx, post)
}
