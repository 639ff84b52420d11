package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/irpost"
)

// Ensure ReleaseExtractor implements irpost.ReleaseExtractor at compile time.
var _ irpost.ReleaseExtractor = (*ReleaseExtractor)(nil)

// ReleaseConfig describes the markers of a press release page.
type ReleaseConfig struct {
	// AnchorSelector and AnchorPattern locate the element every other
	// field is searched forward from.
	AnchorSelector string
	AnchorPattern  string

	// TitleSelector matches the title heading, which must start with
	// TitlePrefix (case-insensitive). The prefix is dropped from the title.
	TitleSelector string
	TitlePrefix   string

	IntroSelector string
	BodySelector  string
}

// DefaultReleaseConfig returns the configuration for Envirologic AB press
// releases on Spotlight Stock Market.
func DefaultReleaseConfig() ReleaseConfig {
	return ReleaseConfig{
		AnchorSelector: "p",
		AnchorPattern:  `(?i)(Press release|Reports)`,
		TitleSelector:  "h2",
		TitlePrefix:    "Envirologic AB:",
		IntroSelector:  "div.intro",
		BodySelector:   "div.body",
	}
}

// ReleaseExtractor pulls title, intro and body out of a press release page.
// It is safe for concurrent use.
type ReleaseExtractor struct {
	anchor      Matcher
	title       Matcher
	titlePrefix string
	intro       Matcher
	body        Matcher
}

// NewReleaseExtractor creates a ReleaseExtractor.
// Returns EINVALID if a selector or the anchor pattern cannot be compiled.
func NewReleaseExtractor(cfg ReleaseConfig) (*ReleaseExtractor, error) {
	re, err := regexp.Compile(cfg.AnchorPattern)
	if err != nil {
		return nil, irpost.Errorf(irpost.EINVALID, "invalid anchor pattern %q: %v", cfg.AnchorPattern, err)
	}

	e := &ReleaseExtractor{titlePrefix: cfg.TitlePrefix}
	for _, s := range []struct {
		selector string
		dst      *Matcher
	}{
		{cfg.AnchorSelector, &e.anchor},
		{cfg.TitleSelector, &e.title},
		{cfg.IntroSelector, &e.intro},
		{cfg.BodySelector, &e.body},
	} {
		m, err := Selector(s.selector)
		if err != nil {
			return nil, err
		}
		*s.dst = m
	}

	e.anchor = All(e.anchor, TextMatches(re))
	e.title = All(e.title, TextHasPrefix(cfg.TitlePrefix))
	return e, nil
}

// ExtractRelease locates the anchor paragraph and searches forward from it,
// independently, for the title, intro and body. Without an anchor every
// field is left nil.
func (e *ReleaseExtractor) ExtractRelease(rawHTML string) *irpost.Release {
	r := &irpost.Release{}

	root := parse(rawHTML)
	if root == nil {
		return r
	}

	anchor := First(root, e.anchor)
	if anchor == nil {
		return r
	}

	if n := Next(anchor, e.title); n != nil {
		title, _ := cutPrefixFold(strings.TrimSpace(nodeText(n)), e.titlePrefix)
		r.Title = irpost.String(strings.TrimSpace(title))
	}

	if n := Next(anchor, e.intro); n != nil {
		r.Intro = irpost.String(strings.TrimSpace(nodeText(n)))
	}

	if n := Next(anchor, e.body); n != nil {
		if body, err := goquery.OuterHtml(selection(n)); err == nil {
			r.Body = irpost.String(body)
		}
	}

	return r
}
