package browse_test

import (
	"testing"

	"github.com/hahn/maakmai/internal/browse"
	"github.com/hahn/maakmai/internal/model"
)

func strPtr(s string) *string { return &s }

func knittingForest() []model.TagFolder {
	return []model.TagFolder{
		{
			ID:   "f-knitting",
			Tag:  "knitting",
			Root: true,
			Children: []model.TagFolder{
				{ID: "f-mittens", Tag: "mittens"},
			},
		},
	}
}

func ids(bookmarks []model.Bookmark) []string {
	var out []string
	for _, b := range bookmarks {
		out = append(out, b.ID)
	}
	return out
}

func TestBrowse_DrillDownExclusion(t *testing.T) {
	forest := knittingForest()
	bookmarks := []model.Bookmark{
		{ID: "b1", Title: "Mitten pattern", Tags: []string{"mittens", "knitting"}},
		{ID: "b2", Title: "Cast on basics", Tags: []string{"knitting"}},
	}

	view := browse.Browse(forest, bookmarks, browse.Query{Path: "/knitting"})

	got := ids(view.VisibleBookmarks)
	if len(got) != 1 || got[0] != "b2" {
		t.Errorf("showAll=false at /knitting: visible = %v, want [b2]", got)
	}
	if len(view.VisibleFolders) != 1 || view.VisibleFolders[0].Folder.Tag != "mittens" {
		t.Errorf("expected visible folder [mittens], got %v", view.VisibleFolders)
	}
	if view.VisibleFolders[0].Path != "/knitting/mittens" {
		t.Errorf("child path = %q, want /knitting/mittens", view.VisibleFolders[0].Path)
	}
}

func TestBrowse_ShowAllRevealsChildTagged(t *testing.T) {
	forest := knittingForest()
	bookmarks := []model.Bookmark{
		{ID: "b1", Tags: []string{"mittens", "knitting"}},
		{ID: "b2", Tags: []string{"knitting"}},
	}

	view := browse.Browse(forest, bookmarks, browse.Query{Path: "/knitting", ShowAll: true})

	got := ids(view.VisibleBookmarks)
	if len(got) != 2 || got[0] != "b1" || got[1] != "b2" {
		t.Errorf("showAll=true at /knitting: visible = %v, want [b1 b2]", got)
	}
}

func TestBrowse_ShowAllStillRequiresPathTags(t *testing.T) {
	forest := knittingForest()
	bookmarks := []model.Bookmark{
		{ID: "b1", Tags: []string{"knitting"}},
		{ID: "b2", Tags: []string{"crochet"}},
	}

	view := browse.Browse(forest, bookmarks, browse.Query{Path: "/knitting", ShowAll: true})

	got := ids(view.VisibleBookmarks)
	if len(got) != 1 || got[0] != "b1" {
		t.Errorf("showAll must not bypass the path tag filter: visible = %v", got)
	}
}

func TestBrowse_PathTagsAreSupersetFilter(t *testing.T) {
	forest := []model.TagFolder{
		{
			ID: "f-knitting", Tag: "knitting", Root: true,
			Children: []model.TagFolder{
				{ID: "f-mittens", Tag: "mittens"},
			},
		},
	}
	bookmarks := []model.Bookmark{
		{ID: "b1", Tags: []string{"mittens"}}, // missing "knitting"
		{ID: "b2", Tags: []string{"knitting", "mittens"}},
	}

	view := browse.Browse(forest, bookmarks, browse.Query{Path: "/knitting/mittens"})

	got := ids(view.VisibleBookmarks)
	if len(got) != 1 || got[0] != "b2" {
		t.Errorf("expected only bookmarks carrying every path tag, got %v", got)
	}
}

func TestBrowse_ShowAllMonotonicity(t *testing.T) {
	forest := knittingForest()
	bookmarks := []model.Bookmark{
		{ID: "b1", Tags: []string{"mittens", "knitting"}},
		{ID: "b2", Tags: []string{"knitting"}},
		{ID: "b3", Tags: []string{"knitting", "wool"}},
		{ID: "b4", Tags: []string{"crochet"}},
	}

	without := browse.Browse(forest, bookmarks, browse.Query{Path: "/knitting"})
	with := browse.Browse(forest, bookmarks, browse.Query{Path: "/knitting", ShowAll: true})

	visible := map[string]bool{}
	for _, b := range with.VisibleBookmarks {
		visible[b.ID] = true
	}
	for _, b := range without.VisibleBookmarks {
		if !visible[b.ID] {
			t.Errorf("toggling showAll hid bookmark %s", b.ID)
		}
	}
}

func TestBrowse_SearchNarrows(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "b1", Title: "Mitten pattern", Tags: []string{}},
		{ID: "b2", Title: "Cast on basics", Description: "thumb gusset how-to", Tags: []string{}},
		{ID: "b3", Title: "Yarn shop", URL: strPtr("https://example.com/mitten-yarn"), Tags: []string{}},
	}

	base := browse.Browse(nil, bookmarks, browse.Query{Path: "/"})
	searched := browse.Browse(nil, bookmarks, browse.Query{Path: "/", SearchQuery: "MITTEN"})

	if len(searched.VisibleBookmarks) >= len(base.VisibleBookmarks)+1 {
		t.Error("search must never widen the visible set")
	}

	got := ids(searched.VisibleBookmarks)
	if len(got) != 2 || got[0] != "b1" || got[1] != "b3" {
		t.Errorf("case-insensitive search over title/url: visible = %v, want [b1 b3]", got)
	}

	desc := browse.Browse(nil, bookmarks, browse.Query{Path: "/", SearchQuery: "gusset"})
	if len(desc.VisibleBookmarks) != 1 || desc.VisibleBookmarks[0].ID != "b2" {
		t.Errorf("search must match descriptions, got %v", ids(desc.VisibleBookmarks))
	}
}

func TestBrowse_UnresolvablePathFallsBackToRoot(t *testing.T) {
	forest := knittingForest()
	bookmarks := []model.Bookmark{
		{ID: "b1", Tags: []string{"knitting"}},
	}

	view := browse.Browse(forest, bookmarks, browse.Query{Path: "/no/such/folder", ShowAll: true})

	if view.CurrentFolderID != nil {
		t.Error("expected nil CurrentFolderID when falling back to root")
	}
	if len(view.VisibleFolders) != 1 || view.VisibleFolders[0].Folder.Tag != "knitting" {
		t.Errorf("expected root folders when path fails, got %v", view.VisibleFolders)
	}
	// Path tags still apply, so nothing carries "no" and "such" and "folder".
	if len(view.VisibleBookmarks) != 0 {
		t.Errorf("expected no bookmarks for unresolvable path tags, got %v", ids(view.VisibleBookmarks))
	}
}

func TestBrowse_CurrentFolderID(t *testing.T) {
	forest := knittingForest()

	atRoot := browse.Browse(forest, nil, browse.Query{Path: "/"})
	if atRoot.CurrentFolderID != nil {
		t.Error("expected nil CurrentFolderID at root")
	}

	inFolder := browse.Browse(forest, nil, browse.Query{Path: "/knitting"})
	if inFolder.CurrentFolderID == nil || *inFolder.CurrentFolderID != "f-knitting" {
		t.Errorf("expected CurrentFolderID f-knitting, got %v", inFolder.CurrentFolderID)
	}
}

func TestBrowse_FoldersSortedCaseInsensitive(t *testing.T) {
	forest := []model.TagFolder{
		{ID: "f1", Tag: "Zimmer", Root: true},
		{ID: "f2", Tag: "apple", Root: true},
		{ID: "f3", Tag: "Banana", Root: true},
	}

	view := browse.Browse(forest, nil, browse.Query{Path: "/"})

	want := []string{"apple", "Banana", "Zimmer"}
	if len(view.VisibleFolders) != len(want) {
		t.Fatalf("expected %d folders, got %d", len(want), len(view.VisibleFolders))
	}
	for i, tag := range want {
		if view.VisibleFolders[i].Folder.Tag != tag {
			t.Errorf("folder[%d] = %q, want %q", i, view.VisibleFolders[i].Folder.Tag, tag)
		}
	}
}

func TestBrowse_EmptyInputs(t *testing.T) {
	view := browse.Browse(nil, nil, browse.Query{Path: "/"})

	if len(view.VisibleFolders) != 0 || len(view.VisibleBookmarks) != 0 {
		t.Error("expected empty view for empty inputs")
	}
	if view.CurrentFolderID != nil {
		t.Error("expected nil CurrentFolderID for empty tree")
	}
}
