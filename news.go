package irpost

import (
	"slices"
	"strings"
)

// NewsEntry is one item of an investor-relations news listing.
// It is either an ArticleRef or a BareTimestamp; callers type-switch
// to tell them apart.
type NewsEntry interface {
	// When returns the entry's timestamp exactly as found in the page.
	When() string

	newsEntry()
}

// ArticleRef points at a news article's page.
type ArticleRef struct {
	Timestamp string
	Href      string // as written in the page, possibly relative
	Title     string
}

// When returns the article's timestamp.
func (a ArticleRef) When() string { return a.Timestamp }

func (ArticleRef) newsEntry() {}

// BareTimestamp is a degenerate entry: a timestamp with no link after it.
type BareTimestamp struct {
	Timestamp string
}

// When returns the timestamp.
func (b BareTimestamp) When() string { return b.Timestamp }

func (BareTimestamp) newsEntry() {}

// NewsIndex is the result of scanning an investor-relations page.
type NewsIndex struct {
	// Entries are ordered newest first.
	Entries []NewsEntry

	// SectionFound reports whether the news section heading was present.
	// A missing section is not an error; Entries is then empty.
	SectionFound bool
}

// SortNewestFirst orders entries by timestamp, descending, in place.
// Timestamps are compared as plain strings. Entries with equal timestamps
// keep their relative order.
func SortNewestFirst(entries []NewsEntry) {
	slices.SortStableFunc(entries, func(a, b NewsEntry) int {
		return strings.Compare(b.When(), a.When())
	})
}

// NewsExtractor finds the news listing on an investor-relations page.
type NewsExtractor interface {
	// ExtractNews parses the page HTML and returns its news entries.
	// It never fails: unparseable or unrelated pages yield an empty index.
	ExtractNews(html string) *NewsIndex
}
