package goquery

import (
	"strings"

	"github.com/fwojciec/irpost"
	"golang.org/x/net/html"
)

// Ensure NewsExtractor implements irpost.NewsExtractor at compile time.
var _ irpost.NewsExtractor = (*NewsExtractor)(nil)

// NewsConfig describes where the news listing sits on the page.
type NewsConfig struct {
	// HeadingSelector matches candidate section headings.
	HeadingSelector string

	// SectionLabel must appear in the heading's text (case-sensitive).
	SectionLabel string

	// TimeSelector matches publication timestamps inside the section.
	TimeSelector string

	// LinkSelector matches the article link following each timestamp.
	LinkSelector string
}

// DefaultNewsConfig returns the configuration for Spotlight Stock Market
// investor-relations pages.
func DefaultNewsConfig() NewsConfig {
	return NewsConfig{
		HeadingSelector: "h2.subheading",
		SectionLabel:    "Nyheter",
		TimeSelector:    "time",
		LinkSelector:    "a",
	}
}

// NewsExtractor lists the news articles of an investor-relations page.
// It is safe for concurrent use.
type NewsExtractor struct {
	heading Matcher
	time    Matcher
	link    Matcher
}

// NewNewsExtractor creates a NewsExtractor.
// Returns EINVALID if any selector cannot be compiled.
func NewNewsExtractor(cfg NewsConfig) (*NewsExtractor, error) {
	heading, err := Selector(cfg.HeadingSelector)
	if err != nil {
		return nil, err
	}
	timeEl, err := Selector(cfg.TimeSelector)
	if err != nil {
		return nil, err
	}
	link, err := Selector(cfg.LinkSelector)
	if err != nil {
		return nil, err
	}
	return &NewsExtractor{
		heading: All(heading, TextContains(cfg.SectionLabel)),
		time:    timeEl,
		link:    link,
	}, nil
}

// ExtractNews finds the section heading, collects the timestamps under the
// heading's parent and pairs each with the next link in the document.
// Entries are returned newest first.
func (e *NewsExtractor) ExtractNews(rawHTML string) *irpost.NewsIndex {
	index := &irpost.NewsIndex{Entries: []irpost.NewsEntry{}}

	root := parse(rawHTML)
	if root == nil {
		return index
	}

	heading := First(root, e.heading)
	if heading == nil || heading.Parent == nil {
		return index
	}
	index.SectionFound = true

	// Scope to the heading's container so timestamps elsewhere on the
	// page are not picked up.
	for _, t := range FindAll(heading.Parent, e.time) {
		index.Entries = append(index.Entries, e.entry(t))
	}

	irpost.SortNewestFirst(index.Entries)
	return index
}

func (e *NewsExtractor) entry(t *html.Node) irpost.NewsEntry {
	ts := timestamp(t)

	link := Next(t, e.link)
	if link == nil {
		return irpost.BareTimestamp{Timestamp: ts}
	}

	sel := selection(link)
	href, _ := sel.Attr("href")
	return irpost.ArticleRef{
		Timestamp: ts,
		Href:      strings.TrimSpace(href),
		Title:     strings.TrimSpace(sel.Text()),
	}
}

// timestamp prefers the machine-readable datetime attribute and falls back
// to the element's visible text.
func timestamp(t *html.Node) string {
	sel := selection(t)
	if dt, ok := sel.Attr("datetime"); ok {
		return dt
	}
	return strings.TrimSpace(sel.Text())
}
