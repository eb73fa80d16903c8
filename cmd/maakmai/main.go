package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/hahn/maakmai/internal/browse"
	"github.com/hahn/maakmai/internal/exporter"
	"github.com/hahn/maakmai/internal/importer"
	"github.com/hahn/maakmai/internal/meta"
	"github.com/hahn/maakmai/internal/model"
	"github.com/hahn/maakmai/internal/render"
	"github.com/hahn/maakmai/internal/search"
	"github.com/hahn/maakmai/internal/storage"
	"github.com/hahn/maakmai/internal/store"
	"github.com/hahn/maakmai/internal/tagging"
)

func main() {
	if len(os.Args) < 2 {
		runBrowse(nil)
		return
	}

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()
	case "browse", "ls":
		runBrowse(os.Args[2:])
	case "tree":
		runTree()
	case "search":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai search <query>\n")
			os.Exit(1)
		}
		runSearch(strings.Join(os.Args[2:], " "))
	case "open":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai open <query>\n")
			os.Exit(1)
		}
		runOpen(strings.Join(os.Args[2:], " "))
	case "copy":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai copy <query>\n")
			os.Exit(1)
		}
		runCopy(strings.Join(os.Args[2:], " "))
	case "add":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai add <url> [path] [--tags a,b] [--meta page.html]\n")
			os.Exit(1)
		}
		runAdd(os.Args[2:])
	case "rm":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai rm <query>\n")
			os.Exit(1)
		}
		runRemove(strings.Join(os.Args[2:], " "))
	case "folder":
		runFolder(os.Args[2:])
	case "tags":
		runTags()
	case "import":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai import <file.html>\n")
			os.Exit(1)
		}
		runImport(os.Args[2])
	case "export":
		var outputPath string
		if len(os.Args) >= 3 {
			outputPath = os.Args[2]
		}
		runExport(outputPath)
	default:
		// Treat a bare argument as a browse path.
		runBrowse(os.Args[1:])
	}
}

func printHelp() {
	help := `maakmai - tag-folder bookmark manager

Usage:
  maakmai                       Browse the root folders
  maakmai browse [path] [--all] [--search <q>]
                                Browse a folder path; --all reveals
                                bookmarks that belong to child folders
  maakmai tree                  Print the whole folder tree
  maakmai search <query>        Fuzzy search bookmark titles and tags
  maakmai open <query>          Open the best match in the browser
  maakmai copy <query>          Copy the best match's URL to the clipboard
  maakmai add <url> [path] [--tags a,b] [--meta page.html]
                                Add a bookmark, tagged with the path segments;
                                --meta reads a saved page's OpenGraph title
  maakmai rm <query>            Delete the best-matching bookmark
  maakmai folder add <tag> [parent-path]
  maakmai folder rm <path>      Delete an empty folder
  maakmai tags                  Show the most used tags
  maakmai import <file>         Import bookmarks from HTML
  maakmai export [path]         Export bookmarks to HTML
  maakmai help                  Show this help

Data Storage:
  ~/.config/maakmai/maakmai.json (or maakmai.db when present)
`
	fmt.Print(help)
}

// openStore loads the configured backend and opens the store on it.
func openStore() *store.Store {
	backend, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}
	return st
}

// runBrowse renders the visible folders and bookmarks for a path.
func runBrowse(args []string) {
	q := browse.Query{Path: "/"}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--all", "-a":
			q.ShowAll = true
		case "--search", "-s":
			if i+1 < len(args) {
				i++
				q.SearchQuery = args[i]
			}
		default:
			q.Path = args[i]
		}
	}

	st := openStore()
	view := browse.Browse(st.RootFolders(), st.Bookmarks(), q)
	fmt.Print(render.View(view, render.DefaultStyles()))
}

func runTree() {
	st := openStore()
	fmt.Print(render.Tree(st.RootFolders(), render.DefaultStyles()))
}

func runSearch(query string) {
	st := openStore()
	results := search.FuzzySearch(st.Bookmarks(), query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return
	}
	for _, r := range results {
		url := ""
		if r.Bookmark.URL != nil {
			url = *r.Bookmark.URL
		}
		fmt.Printf("  %s  %s\n", r.Bookmark.Title, url)
	}
}

// bestMatch returns the top fuzzy result, or exits with a message.
func bestMatch(st *store.Store, query string) *model.Bookmark {
	results := search.FuzzySearch(st.Bookmarks(), query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}
	return results[0].Bookmark
}

func runOpen(query string) {
	st := openStore()
	bm := bestMatch(st, query)
	if bm.URL == nil {
		fmt.Printf("'%s' has no URL\n", bm.Title)
		return
	}
	fmt.Printf("Opening: %s\n", bm.Title)
	openURL(*bm.URL)
}

func runCopy(query string) {
	st := openStore()
	bm := bestMatch(st, query)
	if bm.URL == nil {
		fmt.Printf("'%s' has no URL\n", bm.Title)
		return
	}
	if err := clipboard.WriteAll(*bm.URL); err != nil {
		fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Copied: %s\n", *bm.URL)
}

// runAdd creates a bookmark from a URL. The title and description come
// from a saved page passed via --meta, otherwise the title is derived
// from the URL itself. Path segments and --tags both become tags.
func runAdd(args []string) {
	rawURL := args[0]
	path := "/"
	var manual []string
	var metaFile string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--tags", "-t":
			if i+1 < len(args) {
				i++
				manual = tagging.SplitManual(args[i])
			}
		case "--meta", "-m":
			if i+1 < len(args) {
				i++
				metaFile = args[i]
			}
		default:
			path = args[i]
		}
	}

	title, description := readMeta(metaFile)
	if title == "" {
		title = meta.TitleFromURL(rawURL)
	}

	st := openStore()
	bm := model.NewBookmark(model.NewBookmarkParams{
		Title:       title,
		Description: description,
		URL:         &rawURL,
		Tags:        tagging.Merge(manual, model.PathTags(path), nil, nil),
	})
	if err := st.CreateBookmark(bm); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding bookmark: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Added: %s %v\n", bm.Title, bm.Tags)
}

// readMeta reads a saved HTML page and extracts its OpenGraph title
// and description. An empty path or any failure yields empty strings.
func readMeta(path string) (title, description string) {
	if path == "" {
		return "", ""
	}

	file, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer file.Close()

	og, err := meta.ParseOpenGraph(file)
	if err != nil {
		return "", ""
	}
	return og.Title, og.Description
}

func runRemove(query string) {
	st := openStore()
	bm := bestMatch(st, query)
	if err := st.DeleteBookmark(bm.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting bookmark: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted: %s\n", bm.Title)
}

func runFolder(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: maakmai folder add|rm ...\n")
		os.Exit(1)
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai folder add <tag> [parent-path]\n")
			os.Exit(1)
		}
		runFolderAdd(args[1], args[2:])
	case "rm":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Usage: maakmai folder rm <path>\n")
			os.Exit(1)
		}
		runFolderRemove(args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown folder command '%s'\n", args[0])
		os.Exit(1)
	}
}

func runFolderAdd(tag string, rest []string) {
	st := openStore()

	var parent *string
	if len(rest) > 0 {
		root := model.NewRoot(st.RootFolders())
		found := root.FindFolder(rest[0])
		if found == nil {
			fmt.Fprintf(os.Stderr, "No folder at '%s'\n", rest[0])
			os.Exit(1)
		}
		parent = &found.ID
	}

	f := model.NewFolder(model.NewFolderParams{Tag: tag, Parent: parent})
	if err := st.CreateFolder(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating folder: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created folder '%s'\n", tag)
}

func runFolderRemove(path string) {
	st := openStore()

	root := model.NewRoot(st.RootFolders())
	found := root.FindFolder(path)
	if found == nil {
		fmt.Fprintf(os.Stderr, "No folder at '%s'\n", path)
		os.Exit(1)
	}

	if err := st.DeleteFolder(found.ID); err != nil {
		if errors.Is(err, store.ErrFolderHasChildren) {
			fmt.Fprintf(os.Stderr, "'%s' still has child folders; delete them first\n", path)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error deleting folder: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted folder '%s'\n", found.Tag)
}

// runTags prints the most used tags, capped by the configured limit.
func runTags() {
	limit := storage.DefaultConfig().PriorityTagLimit
	if configPath, err := storage.DefaultConfigFilePath(); err == nil {
		if config, err := storage.LoadConfig(configPath); err == nil {
			limit = config.PriorityTagLimit
		}
	}

	st := openStore()
	suggestions := tagging.PriorityTags(st.TagsWithCount())
	if len(suggestions) == 0 {
		fmt.Println("No tags yet")
		return
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	for _, s := range suggestions {
		fmt.Printf("  %s\n", s.Label)
	}
}

func runImport(filePath string) {
	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	folders, bookmarks, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	st := openStore()
	for _, f := range folders {
		if err := st.CreateFolder(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing folder '%s': %v\n", f.Tag, err)
			os.Exit(1)
		}
	}
	for _, b := range bookmarks {
		if err := st.CreateBookmark(b); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing bookmark '%s': %v\n", b.Title, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Imported %d bookmarks, %d folders\n", len(bookmarks), len(folders))
}

func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	st := openStore()
	snap := &model.Snapshot{Folders: st.Folders(), Bookmarks: st.Bookmarks()}
	html := exporter.ExportHTML(snap)

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d bookmarks to %s\n", len(snap.Bookmarks), outputPath)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
