package mock

import "github.com/fwojciec/irpost"

var _ irpost.NewsExtractor = (*NewsExtractor)(nil)

// NewsExtractor is a mock implementation of irpost.NewsExtractor.
type NewsExtractor struct {
	ExtractNewsFn func(html string) *irpost.NewsIndex
}

func (e *NewsExtractor) ExtractNews(html string) *irpost.NewsIndex {
	return e.ExtractNewsFn(html)
}

var _ irpost.ReleaseExtractor = (*ReleaseExtractor)(nil)

// ReleaseExtractor is a mock implementation of irpost.ReleaseExtractor.
type ReleaseExtractor struct {
	ExtractReleaseFn func(html string) *irpost.Release
}

func (e *ReleaseExtractor) ExtractRelease(html string) *irpost.Release {
	return e.ExtractReleaseFn(html)
}
