package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hahn/maakmai/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/maakmai-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("maakmai-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the snapshot to Netscape bookmark HTML format.
//
// Folders are not referenced by bookmarks directly, so each bookmark is
// placed at the deepest folder path its tags cover: starting at the roots,
// the walk descends into the first child whose tag the bookmark carries and
// stops when no child matches. Bookmarks whose tags match no root stay at
// the top level.
func ExportHTML(snap *model.Snapshot) string {
	forest := model.BuildForest(snap.Folders)
	placed := placeBookmarks(forest, snap.Bookmarks)

	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, node := range forest {
		writeFolder(&b, node, placed, 1)
	}
	writeBookmarks(&b, placed[rootBucket], 1)

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// rootBucket keys bookmarks that match no folder. Folder ids are UUIDs, so
// the empty string never collides.
const rootBucket = ""

// placeBookmarks assigns every bookmark to a folder id by the deepest-path
// walk described on ExportHTML. Source order is preserved per bucket.
func placeBookmarks(forest []model.TagFolder, bookmarks []model.Bookmark) map[string][]model.Bookmark {
	placed := make(map[string][]model.Bookmark)

	for _, bm := range bookmarks {
		bucket := rootBucket
		nodes := forest
		for {
			var next *model.TagFolder
			for i := range nodes {
				if bm.HasTag(nodes[i].Tag) {
					next = &nodes[i]
					break
				}
			}
			if next == nil {
				break
			}
			bucket = next.ID
			nodes = next.Children
		}
		placed[bucket] = append(placed[bucket], bm)
	}

	return placed
}

// writeFolder recursively writes one folder with its subtree and bookmarks.
func writeFolder(b *strings.Builder, node model.TagFolder, placed map[string][]model.Bookmark, indent int) {
	prefix := strings.Repeat("    ", indent)

	fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(node.Tag))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)

	for _, child := range node.Children {
		writeFolder(b, child, placed, indent+1)
	}
	writeBookmarks(b, placed[node.ID], indent+1)

	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}

func writeBookmarks(b *strings.Builder, bookmarks []model.Bookmark, indent int) {
	prefix := strings.Repeat("    ", indent)

	for _, bookmark := range bookmarks {
		url := ""
		if bookmark.URL != nil {
			url = *bookmark.URL
		}
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			prefix,
			html.EscapeString(url),
			bookmark.CreatedAt.Unix(),
			html.EscapeString(bookmark.Title),
		)
	}
}
