// Package goquery implements the irpost extractors on top of goquery.
//
// Extraction is expressed as searches over the parsed node tree in document
// order (depth-first, top to bottom). Site-specific knowledge lives only in
// the Matchers handed to those searches.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/irpost"
	"golang.org/x/net/html"
)

// Matcher reports whether a node satisfies a search predicate.
type Matcher func(n *html.Node) bool

// Selector returns a Matcher for elements matching a CSS selector.
func Selector(selector string) (Matcher, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, irpost.Errorf(irpost.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && sel.Match(n)
	}, nil
}

// All returns a Matcher that matches when every given Matcher does.
func All(matchers ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range matchers {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// TextContains matches nodes whose text content contains substr.
// The comparison is case-sensitive.
func TextContains(substr string) Matcher {
	return func(n *html.Node) bool {
		return strings.Contains(nodeText(n), substr)
	}
}

// TextMatches matches nodes whose text content matches re.
func TextMatches(re *regexp.Regexp) Matcher {
	return func(n *html.Node) bool {
		return re.MatchString(nodeText(n))
	}
}

// TextHasPrefix matches nodes whose trimmed text content begins with
// prefix, ignoring case.
func TextHasPrefix(prefix string) Matcher {
	return func(n *html.Node) bool {
		_, ok := cutPrefixFold(strings.TrimSpace(nodeText(n)), prefix)
		return ok
	}
}

// First returns the first node below root, in document order, that
// matches m. Root itself is not considered.
func First(root *html.Node, m Matcher) *html.Node {
	for n := following(root); n != nil && isDescendant(n, root); n = following(n) {
		if m(n) {
			return n
		}
	}
	return nil
}

// FindAll returns every node below root that matches m, in document order.
func FindAll(root *html.Node, m Matcher) []*html.Node {
	var nodes []*html.Node
	for n := following(root); n != nil && isDescendant(n, root); n = following(n) {
		if m(n) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Next returns the first node after from, in document order, that matches
// m. The search is not confined to from's subtree: it continues through
// from's descendants, its following siblings and everything after them
// until the end of the document.
func Next(from *html.Node, m Matcher) *html.Node {
	for n := following(from); n != nil; n = following(n) {
		if m(n) {
			return n
		}
	}
	return nil
}

// following returns the node after n in a depth-first pre-order walk.
func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

func isDescendant(n, root *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// parse returns the root node of the parsed document, or nil if the HTML
// could not be read.
func parse(rawHTML string) *html.Node {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil || len(doc.Nodes) == 0 {
		return nil
	}
	return doc.Nodes[0]
}

func selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

func nodeText(n *html.Node) string {
	return selection(n).Text()
}

// cutPrefixFold is strings.CutPrefix with Unicode case folding. Runes are
// compared one at a time since fold-equal runes may differ in byte length.
func cutPrefixFold(s, prefix string) (string, bool) {
	rest := s
	for _, p := range prefix {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || !strings.EqualFold(string(r), string(p)) {
			return s, false
		}
		rest = rest[size:]
	}
	return rest, true
}
