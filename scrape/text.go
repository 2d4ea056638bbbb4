package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// textOf collects a selection's text by walking its nodes, then trims and
// collapses runs of whitespace. Cell contents on the source site often
// wrap nested elements across line breaks; goquery's plain Text() keeps
// those breaks, which would leak into record fields.
func textOf(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		collectText(n, &b)
	}
	s := strings.TrimSpace(b.String())
	return innerWhitespace.ReplaceAllString(s, " ")
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
