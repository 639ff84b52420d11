package http

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/irpost"
	"golang.org/x/time/rate"
)

var _ irpost.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each host. The first request to a
// host is never delayed; later ones wait for the host's bucket to refill.
// Host names are compared case-insensitively.
type DomainLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter allowing rps requests per second to
// each host. A rate that is not positive returns EINVALID.
func NewDomainLimiter(rps float64) (*DomainLimiter, error) {
	if !(rps > 0) {
		return nil, irpost.Errorf(irpost.EINVALID, "rate must be a positive number of requests per second, got %v", rps)
	}
	return &DomainLimiter{
		limit: rate.Limit(rps),
		hosts: make(map[string]*rate.Limiter),
	}, nil
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if err := d.bucket(host).Wait(ctx); err != nil {
		return fmt.Errorf("waiting to contact %s: %w", host, err)
	}
	return nil
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	key := strings.ToLower(host)

	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.hosts[key]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.hosts[key] = l
	}
	return l
}
