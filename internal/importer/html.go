package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/hahn/maakmai/internal/model"
	"github.com/hahn/maakmai/internal/tagging"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns folder
// records plus bookmarks. Folder names become folder tags, and every
// imported bookmark is tagged with the full folder path it was found under,
// which is what places it in the hierarchy when browsing.
func ParseHTMLBookmarks(r io.Reader) ([]model.Folder, []model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, err
	}

	var folders []model.Folder
	var bookmarks []model.Bookmark

	// Track current folder stack for hierarchy
	var idStack []*string         // stack of folder IDs, nil = root
	var tagStack []string         // folder tags walked to get here
	var pendingFolder *model.Folder // folder waiting to be pushed on next DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - get tag from text content
				tag := getTextContent(n)
				if tag != "" {
					// Get parent folder ID (current top of stack)
					var parent *string
					if len(idStack) > 0 {
						parent = idStack[len(idStack)-1]
					}

					folder := model.NewFolder(model.NewFolderParams{
						Tag:    tag,
						Parent: parent,
					})
					folders = append(folders, folder)

					// Mark this folder as pending - will be pushed when we see the next DL
					pendingFolder = &folders[len(folders)-1]
				}
				return // Don't recurse into H3

			case "a":
				// Bookmark definition
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				bookmark := model.NewBookmark(model.NewBookmarkParams{
					Title: title,
					URL:   &href,
					Tags:  tagging.Merge(nil, tagStack, nil, nil),
				})

				// Parse ADD_DATE timestamp
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						bookmark.CreatedAt = time.Unix(ts, 0)
					}
				}

				bookmarks = append(bookmarks, bookmark)
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				// If we have a pending folder, push it now
				pushedFolder := false
				if pendingFolder != nil {
					id := pendingFolder.ID
					idStack = append(idStack, &id)
					tagStack = append(tagStack, pendingFolder.Tag)
					pendingFolder = nil
					pushedFolder = true
				}

				// Process children
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				// Pop if we pushed
				if pushedFolder && len(idStack) > 0 {
					idStack = idStack[:len(idStack)-1]
					tagStack = tagStack[:len(tagStack)-1]
				}
				return // Don't recurse further, we handled children
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return folders, bookmarks, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
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
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
