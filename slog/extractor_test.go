package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/irpost"
	"github.com/fwojciec/irpost/mock"
	irslog "github.com/fwojciec/irpost/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingNewsExtractor_ExtractNews(t *testing.T) {
	t.Parallel()

	t.Run("logs entry counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &irpost.NewsIndex{
			SectionFound: true,
			Entries: []irpost.NewsEntry{
				irpost.ArticleRef{Timestamp: "2024-02-01", Href: "/a", Title: "A"},
				irpost.BareTimestamp{Timestamp: "2024-01-01"},
			},
		}
		inner := &mock.NewsExtractor{
			ExtractNewsFn: func(html string) *irpost.NewsIndex { return want },
		}

		got := irslog.NewLoggingNewsExtractor(inner, logger).ExtractNews("<html></html>")

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "extract news")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "bare=1")
	})

	t.Run("warns when the section is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.NewsExtractor{
			ExtractNewsFn: func(html string) *irpost.NewsIndex { return &irpost.NewsIndex{} },
		}

		irslog.NewLoggingNewsExtractor(inner, logger).ExtractNews("<html></html>")

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "news section not found")
	})
}

func TestLoggingReleaseExtractor_ExtractRelease(t *testing.T) {
	t.Parallel()

	t.Run("logs found fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ReleaseExtractor{
			ExtractReleaseFn: func(html string) *irpost.Release {
				return &irpost.Release{Title: irpost.String("T"), Body: irpost.String("<div></div>")}
			},
		}

		r := irslog.NewLoggingReleaseExtractor(inner, logger).ExtractRelease("<html></html>")

		assert.Equal(t, "T", *r.Title)
		output := buf.String()
		assert.Contains(t, output, "extract release")
		assert.Contains(t, output, "title=true")
		assert.Contains(t, output, "intro=false")
		assert.Contains(t, output, "body=true")
	})

	t.Run("warns when nothing is found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ReleaseExtractor{
			ExtractReleaseFn: func(html string) *irpost.Release { return &irpost.Release{} },
		}

		irslog.NewLoggingReleaseExtractor(inner, logger).ExtractRelease("")

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "press release not found")
	})
}
