package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/irpost"
)

// DefaultPublishTimeout is the default timeout for publish requests.
const DefaultPublishTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is quoted in errors.
const maxErrorBody = 512

// Ensure Publisher implements irpost.Publisher at compile time.
var _ irpost.Publisher = (*Publisher)(nil)

// Publisher creates posts through the WordPress REST API
// (POST /wp-json/wp/v2/posts) using application-password basic auth.
type Publisher struct {
	client   *http.Client
	endpoint string
	username string
	password string
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithHTTPClient replaces the client used for publish requests.
func WithHTTPClient(c *http.Client) PublisherOption {
	return func(p *Publisher) {
		p.client = c
	}
}

// NewPublisher creates a Publisher posting to endpoint as username.
func NewPublisher(endpoint, username, password string, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		client:   &http.Client{Timeout: DefaultPublishTimeout},
		endpoint: endpoint,
		username: username,
		password: password,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish creates the post. WordPress answers 201 Created with the new
// post, whose id and link are returned.
func (p *Publisher) Publish(ctx context.Context, post *irpost.Post) (*irpost.PublishedPost, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("encoding post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.username, p.password)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, irpost.Errorf(irpost.EUNAUTHORIZED, "publish rejected with HTTP %d: %s", resp.StatusCode, readSnippet(resp.Body))
	default:
		return nil, irpost.Errorf(irpost.EINTERNAL, "publish failed with HTTP %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}

	var published irpost.PublishedPost
	if err := json.NewDecoder(resp.Body).Decode(&published); err != nil {
		return nil, fmt.Errorf("decoding published post: %w", err)
	}
	return &published, nil
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}
