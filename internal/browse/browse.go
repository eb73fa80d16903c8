// Package browse computes what a browsing view shows at a given path:
// the visible child folders and the bookmarks whose tags place them there.
package browse

import (
	"sort"
	"strings"

	"github.com/hahn/maakmai/internal/model"
)

// Query is the navigation state a view is computed from.
type Query struct {
	Path        string
	ShowAll     bool
	SearchQuery string
}

// FolderView pairs a visible child folder with the path that enters it.
type FolderView struct {
	Folder model.TagFolder
	Path   string
}

// View is the computed browsing state for one Query against one snapshot.
type View struct {
	Path             string
	VisibleFolders   []FolderView
	VisibleBookmarks []model.Bookmark
	CurrentFolderID  *string // nil at root
}

// Browse derives the view for q from the current folder forest and bookmark
// collection. It is a pure function and never fails: an unresolvable path
// degrades to root scope, empty inputs produce empty outputs.
func Browse(forest []model.TagFolder, bookmarks []model.Bookmark, q Query) View {
	root := model.NewRoot(forest)
	current := root.FindFolder(q.Path)
	if current == nil {
		current = &root
	}

	pathTags := model.PathTags(q.Path)

	visible := visibleBookmarks(bookmarks, pathTags, current, q.ShowAll)
	if q.SearchQuery != "" {
		visible = searchBookmarks(visible, q.SearchQuery)
	}

	folders := make([]FolderView, 0, len(current.Children))
	for _, child := range current.Children {
		folders = append(folders, FolderView{
			Folder: child,
			Path:   model.ChildPath(q.Path, child.Tag),
		})
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return strings.ToLower(folders[i].Folder.Tag) < strings.ToLower(folders[j].Folder.Tag)
	})

	var currentID *string
	if !current.Root {
		id := current.ID
		currentID = &id
	}

	return View{
		Path:             q.Path,
		VisibleFolders:   folders,
		VisibleBookmarks: visible,
		CurrentFolderID:  currentID,
	}
}

// visibleBookmarks applies the drill-down and path-tag filters. With showAll
// off, bookmarks tagged for a child of the current folder are hidden: they
// belong one level further down. Bookmarks must carry every path tag either
// way. Source order is preserved.
func visibleBookmarks(bookmarks []model.Bookmark, pathTags []string, current *model.TagFolder, showAll bool) []model.Bookmark {
	childTags := make(map[string]bool, len(current.Children))
	if !showAll {
		for _, child := range current.Children {
			childTags[child.Tag] = true
		}
	}

	visible := make([]model.Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if !showAll && taggedForChild(b, childTags) {
			continue
		}
		if !b.HasAllTags(pathTags) {
			continue
		}
		visible = append(visible, b)
	}
	return visible
}

func taggedForChild(b model.Bookmark, childTags map[string]bool) bool {
	for _, tag := range b.Tags {
		if childTags[tag] {
			return true
		}
	}
	return false
}

// searchBookmarks narrows to bookmarks whose title, url or description
// contains the query, case-insensitively.
func searchBookmarks(bookmarks []model.Bookmark, query string) []model.Bookmark {
	query = strings.ToLower(query)

	matched := make([]model.Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Description), query) ||
			(b.URL != nil && strings.Contains(strings.ToLower(*b.URL), query)) {
			matched = append(matched, b)
		}
	}
	return matched
}
