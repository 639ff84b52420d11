package mock

import (
	"context"

	"github.com/fwojciec/irpost"
)

var _ irpost.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of irpost.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, post *irpost.Post) (*irpost.PublishedPost, error)
}

func (p *Publisher) Publish(ctx context.Context, post *irpost.Post) (*irpost.PublishedPost, error) {
	return p.PublishFn(ctx, post)
}
