// Package meta extracts display metadata for the bookmark editor: Open
// Graph properties from an already-fetched HTML document, and a readable
// title guessed from a URL when no metadata is available. Fetching is the
// caller's concern.
package meta

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// OpenGraph holds the metadata extracted from an HTML document. Absent
// properties are empty strings.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	SiteName    string
}

// ParseOpenGraph extracts og: meta properties from the document. When no
// og:title is present the <title> element is used instead. HTML entities
// are decoded by the parser.
func ParseOpenGraph(r io.Reader) (OpenGraph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return OpenGraph{}, err
	}

	var og OpenGraph
	var titleTag string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "meta":
				property := strings.ToLower(getAttr(n, "property"))
				content := getAttr(n, "content")
				switch property {
				case "og:title":
					if og.Title == "" {
						og.Title = content
					}
				case "og:description":
					if og.Description == "" {
						og.Description = content
					}
				case "og:url":
					if og.URL == "" {
						og.URL = content
					}
				case "og:image":
					if og.Image == "" {
						og.Image = content
					}
				case "og:site_name":
					if og.SiteName == "" {
						og.SiteName = content
					}
				}
			case "title":
				if titleTag == "" {
					titleTag = strings.TrimSpace(textContent(n))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if og.Title == "" {
		og.Title = titleTag
	}
	return og, nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return text.String()
}
