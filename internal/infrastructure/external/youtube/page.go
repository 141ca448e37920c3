package youtube

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// extractPageTitle reads the og:title meta tag, falling back to the <title> element
func extractPageTitle(page []byte) string {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var ogTitle, docTitle string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if ogTitle != "" {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				if getAttr(n, "property") == "og:title" || getAttr(n, "name") == "title" {
					ogTitle = strings.TrimSpace(getAttr(n, "content"))
				}
			case "title":
				if docTitle == "" && n.FirstChild != nil {
					docTitle = strings.TrimSpace(n.FirstChild.Data)
				}
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if ogTitle != "" {
		return ogTitle
	}
	docTitle = strings.TrimSpace(strings.TrimSuffix(docTitle, "- YouTube"))
	return docTitle
}

// getAttr returns the value of an attribute on a node, or ""
func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
