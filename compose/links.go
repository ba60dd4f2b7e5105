package compose

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/model"
)

// ExtractLinks returns the anchor links found in an inline HTML fragment,
// in document order. Anchors without an href are skipped. The parser is
// lenient: malformed markup yields whatever anchors can still be
// recognized, and unparseable input yields nil.
func ExtractLinks(fragment string) []model.Link {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var links []model.Link
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if link, ok := anchorLink(n); ok {
				links = append(links, link)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return links
}

// FirstLink returns the first anchor link in the fragment, or nil. It is
// the common case when attaching a reference to a slice built from one
// inline HTML span.
func FirstLink(fragment string) *model.Link {
	links := ExtractLinks(fragment)
	if len(links) == 0 {
		return nil
	}
	return &links[0]
}

// anchorLink builds a link from an anchor element's attributes
func anchorLink(n *html.Node) (model.Link, bool) {
	var link model.Link
	for _, attr := range n.Attr {
		switch attr.Key {
		case "href":
			link.URL = attr.Val
		case "title":
			link.Title = attr.Val
		}
	}
	return link, link.URL != ""
}
