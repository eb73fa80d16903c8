package search

import (
	"strings"

	"github.com/hahn/maakmai/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkSource implements fuzzy.Source over a bookmark's title and tags.
type bookmarkSource []*model.Bookmark

func (bs bookmarkSource) String(i int) string {
	if len(bs[i].Tags) == 0 {
		return bs[i].Title
	}
	return bs[i].Title + " " + strings.Join(bs[i].Tags, " ")
}

func (bs bookmarkSource) Len() int {
	return len(bs)
}

// FuzzySearch searches bookmarks by title and tags using fuzzy matching.
// Returns results sorted by match score (best first). This is the quick-pick
// search of the CLI; the browsing engine's substring search lives in browse.
func FuzzySearch(bookmarks []model.Bookmark, query string) []Result {
	if query == "" {
		return nil
	}

	// Build slice of bookmark pointers
	source := make(bookmarkSource, len(bookmarks))
	for i := range bookmarks {
		source[i] = &bookmarks[i]
	}

	matches := fuzzy.FindFrom(query, source)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       source[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
