// Package render formats browse views and folder trees for the CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/hahn/maakmai/internal/browse"
	"github.com/hahn/maakmai/internal/model"
)

// View renders a browse view: the path, its visible child folders, then
// its visible bookmarks.
func View(v browse.View, styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.Path.Render(v.Path))
	b.WriteString("\n")

	for _, fv := range v.VisibleFolders {
		folder := styles.Folder.Foreground(FolderColor(fv.Folder.Color))
		fmt.Fprintf(&b, "  %s/\n", folder.Render(fv.Folder.Tag))
	}

	for _, bm := range v.VisibleBookmarks {
		b.WriteString("  ")
		b.WriteString(styles.Bookmark.Render(bm.Title))
		if bm.URL != nil {
			b.WriteString("  ")
			b.WriteString(styles.URL.Render(*bm.URL))
		}
		if len(bm.Tags) > 0 {
			b.WriteString("  ")
			b.WriteString(styles.Tag.Render("[" + strings.Join(bm.Tags, ", ") + "]"))
		}
		b.WriteString("\n")
	}

	if len(v.VisibleFolders) == 0 && len(v.VisibleBookmarks) == 0 {
		b.WriteString(styles.Empty.Render("  (empty)"))
		b.WriteString("\n")
	}

	return b.String()
}

// Tree renders the whole folder forest as an indented tree.
func Tree(forest []model.TagFolder, styles Styles) string {
	var b strings.Builder
	for _, node := range forest {
		writeTree(&b, node, styles, 0)
	}
	if b.Len() == 0 {
		b.WriteString(styles.Empty.Render("(no folders)"))
		b.WriteString("\n")
	}
	return b.String()
}

func writeTree(b *strings.Builder, node model.TagFolder, styles Styles, depth int) {
	indent := strings.Repeat("  ", depth)
	folder := styles.Folder.Foreground(FolderColor(node.Color))

	fmt.Fprintf(b, "%s%s/", indent, folder.Render(node.Tag))
	if len(node.TagGroups) > 0 {
		b.WriteString("  ")
		b.WriteString(styles.Tag.Render("{" + strings.Join(node.TagGroups, ", ") + "}"))
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeTree(b, child, styles, depth+1)
	}
}
