// Package htmltomarkdown renders post content as Markdown so the operator
// can review a release in the terminal before it is published.
package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/irpost"
)

// Ensure Converter implements irpost.Converter at compile time.
var _ irpost.Converter = (*Converter)(nil)

// edgeBreaks matches line breaks at either end of post content. Content
// joins intro and body with one, so a missing part leaves it dangling.
var edgeBreaks = regexp.MustCompile(`(?i)^(?:\s*<br\s*/?>)+|(?:<br\s*/?>\s*)+$`)

// Converter renders post content as Markdown for the publish preview.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and images in the content against
// domain, normally the stock exchange site the release was fetched from.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert renders post content as Markdown. Content holding neither an
// intro nor a body, only the separating line break, renders as the empty
// string.
func (c *Converter) Convert(html string) (string, error) {
	html = strings.TrimSpace(edgeBreaks.ReplaceAllString(html, ""))
	if html == "" {
		return "", nil
	}

	var (
		md  string
		err error
	)
	if c.domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", fmt.Errorf("converting post content: %w", err)
	}

	return strings.TrimSpace(md), nil
}
