package goquery_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fwojciec/irpost"
	"github.com/fwojciec/irpost/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func mustSelector(t *testing.T, s string) goquery.Matcher {
	t.Helper()
	m, err := goquery.Selector(s)
	require.NoError(t, err)
	return m
}

func idOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == "id" {
			return a.Val
		}
	}
	return ""
}

func TestSelector(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid selectors", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.Selector("div[")

		require.Error(t, err)
		assert.Equal(t, irpost.EINVALID, irpost.ErrorCode(err))
	})

	t.Run("matches elements only", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<div class="intro">text</div>`)
		m := mustSelector(t, "div.intro")

		div := goquery.First(doc, m)
		require.NotNil(t, div)
		assert.False(t, m(div.FirstChild))
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns first match in document order", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<div id="outer"><p id="a"><span id="b"></span></p></div><p id="c"></p>`)

		assert.Equal(t, "a", idOf(goquery.First(doc, mustSelector(t, "p"))))
	})

	t.Run("does not consider the root itself", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<div id="outer"><div id="inner"></div></div>`)
		outer := goquery.First(doc, mustSelector(t, "#outer"))
		require.NotNil(t, outer)

		assert.Equal(t, "inner", idOf(goquery.First(outer, mustSelector(t, "div"))))
	})

	t.Run("stays inside the root's subtree", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<div id="scope"><span></span></div><p id="outside"></p>`)
		scope := goquery.First(doc, mustSelector(t, "#scope"))
		require.NotNil(t, scope)

		assert.Nil(t, goquery.First(scope, mustSelector(t, "p")))
	})
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `<ul id="list"><li id="1"><li id="2"><ul><li id="3"></li></ul></li></ul><li id="4"></li>`)
	list := goquery.First(doc, mustSelector(t, "#list"))
	require.NotNil(t, list)

	var ids []string
	for _, n := range goquery.FindAll(list, mustSelector(t, "li")) {
		ids = append(ids, idOf(n))
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestNext(t *testing.T) {
	t.Parallel()

	t.Run("includes descendants of the starting node", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<div id="from"><a id="inside"></a></div><a id="after"></a>`)
		from := goquery.First(doc, mustSelector(t, "#from"))

		assert.Equal(t, "inside", idOf(goquery.Next(from, mustSelector(t, "a"))))
	})

	t.Run("continues past the parent to the end of the document", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<a id="before"></a><section><time id="from"></time></section><footer><a id="after"></a></footer>`)
		from := goquery.First(doc, mustSelector(t, "#from"))

		assert.Equal(t, "after", idOf(goquery.Next(from, mustSelector(t, "a"))))
	})

	t.Run("returns nil when nothing follows", func(t *testing.T) {
		t.Parallel()

		doc := parseHTML(t, `<a></a><time id="from"></time>`)
		from := goquery.First(doc, mustSelector(t, "#from"))

		assert.Nil(t, goquery.Next(from, mustSelector(t, "a")))
	})
}

func TestTextMatchers(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `<h2 id="h">  Envirologic AB: <em>Q3</em> Results</h2>`)
	h := goquery.First(doc, mustSelector(t, "#h"))
	require.NotNil(t, h)

	assert.True(t, goquery.TextContains("AB: Q3")(h))
	assert.False(t, goquery.TextContains("ab: q3")(h))
	assert.True(t, goquery.TextMatches(regexp.MustCompile(`(?i)q3 results`))(h))
	assert.True(t, goquery.TextHasPrefix("ENVIROLOGIC ab:")(h))
	assert.False(t, goquery.TextHasPrefix("Results")(h))
	assert.True(t, goquery.All(mustSelector(t, "h2"), goquery.TextContains("Q3"))(h))
	assert.False(t, goquery.All(mustSelector(t, "h3"), goquery.TextContains("Q3"))(h))
}

func TestTextHasPrefix(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, "<h2 id=\"k\">\u212AELVIN AB: Q3</h2><h2 id=\"s\">Kel</h2>")
	kelvin := goquery.First(doc, mustSelector(t, "#k"))
	short := goquery.First(doc, mustSelector(t, "#s"))
	require.NotNil(t, kelvin)
	require.NotNil(t, short)

	assert.True(t, goquery.TextHasPrefix("kelvin ab:")(kelvin))
	assert.False(t, goquery.TextHasPrefix("kelvin ab:")(short))
	assert.False(t, goquery.TextHasPrefix("kelvin ab: q4")(kelvin))
}
