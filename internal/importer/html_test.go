package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/hahn/maakmai/internal/importer"
	"github.com/hahn/maakmai/internal/model"
)

func TestParseHTML_SingleBookmark(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Example Site</A>
</DL><p>`

	folders, bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(folders) != 0 {
		t.Errorf("expected 0 folders, got %d", len(folders))
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}

	b := bookmarks[0]
	if b.Title != "Example Site" {
		t.Errorf("expected title 'Example Site', got %q", b.Title)
	}
	if b.URL == nil || *b.URL != "https://example.com" {
		t.Errorf("expected URL 'https://example.com', got %v", b.URL)
	}
	if len(b.Tags) != 0 {
		t.Errorf("expected no tags at root level, got %v", b.Tags)
	}
	if b.ID == "" {
		t.Error("expected non-empty ID")
	}
	if !b.CreatedAt.Equal(time.Unix(1234567890, 0)) {
		t.Errorf("expected ADD_DATE to be parsed, got %v", b.CreatedAt)
	}
}

func TestParseHTML_NestedFoldersBecomeTags(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">knitting</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">mittens</H3>
        <DL><p>
            <DT><A HREF="https://example.com/gusset" ADD_DATE="1234567890">Thumb gusset</A>
        </DL><p>
        <DT><A HREF="https://example.com/cast-on" ADD_DATE="1234567890">Cast on</A>
    </DL><p>
    <DT><A HREF="https://example.com/yarn" ADD_DATE="1234567890">Yarn shop</A>
</DL><p>`

	folders, bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(folders))
	}

	var knitting, mittens *model.Folder
	for i := range folders {
		switch folders[i].Tag {
		case "knitting":
			knitting = &folders[i]
		case "mittens":
			mittens = &folders[i]
		}
	}

	if knitting == nil || knitting.Parent != nil {
		t.Fatalf("expected root folder 'knitting', got %+v", knitting)
	}
	if mittens == nil || mittens.Parent == nil || *mittens.Parent != knitting.ID {
		t.Fatalf("expected 'mittens' under 'knitting', got %+v", mittens)
	}

	if len(bookmarks) != 3 {
		t.Fatalf("expected 3 bookmarks, got %d", len(bookmarks))
	}

	tagsByTitle := map[string][]string{}
	for _, b := range bookmarks {
		tagsByTitle[b.Title] = b.Tags
	}

	assertTags := func(title string, want ...string) {
		t.Helper()
		got := tagsByTitle[title]
		if len(got) != len(want) {
			t.Errorf("%s: tags = %v, want %v", title, got, want)
			return
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: tags = %v, want %v", title, got, want)
				return
			}
		}
	}

	assertTags("Thumb gusset", "knitting", "mittens")
	assertTags("Cast on", "knitting")
	assertTags("Yarn shop")
}

func TestParseHTML_SkipsAnchorsWithoutHref(t *testing.T) {
	html := `<DL><p>
    <DT><A>No link here</A>
    <DT><A HREF="">Empty link</A>
    <DT><A HREF="https://example.com">Real link</A>
</DL><p>`

	_, bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Title != "Real link" {
		t.Errorf("unexpected bookmark: %q", bookmarks[0].Title)
	}
}

func TestParseHTML_TitleFallsBackToURL(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://example.com"></A>
</DL><p>`

	_, bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Title != "https://example.com" {
		t.Errorf("expected URL as title fallback, got %q", bookmarks[0].Title)
	}
}

func TestParseHTML_EmptyInput(t *testing.T) {
	folders, bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(folders) != 0 || len(bookmarks) != 0 {
		t.Error("expected nothing from empty input")
	}
}
