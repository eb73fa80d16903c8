package model

import "strings"

// TagFolder is a node in the derived folder tree. Nodes are immutable per
// snapshot; the whole forest is rebuilt whenever the flat records change.
type TagFolder struct {
	ID        string      `json:"id"`
	Tag       string      `json:"tag"`
	Children  []TagFolder `json:"children"`
	Root      bool        `json:"root"`
	TagGroups []string    `json:"tagGroups"`
	Color     string      `json:"color"`
}

// NewRoot wraps a forest in a synthetic super-root so path lookups can start
// from a single node. The root itself is not addressable by any path segment.
func NewRoot(children []TagFolder) TagFolder {
	return TagFolder{Tag: "root", Children: children, Root: true}
}

// FindFolder resolves a /-separated path of folder tags below f. Empty
// segments are ignored, so "", "/" and "//" all resolve to f itself.
// Matching is case-sensitive and the first matching child wins. Returns nil
// if any segment fails to resolve.
func (f *TagFolder) FindFolder(path string) *TagFolder {
	node := f
	for _, segment := range PathTags(path) {
		node = node.childByTag(segment)
		if node == nil {
			return nil
		}
	}
	return node
}

// FindFolders resolves the same path as FindFolder but returns every node
// walked, deepest first, excluding f itself. A root path or a path that
// fails to resolve yields an empty list, never a partial one.
func (f *TagFolder) FindFolders(path string) []TagFolder {
	segments := PathTags(path)
	if len(segments) == 0 {
		return nil
	}

	walked := make([]TagFolder, 0, len(segments))
	node := f
	for _, segment := range segments {
		node = node.childByTag(segment)
		if node == nil {
			return nil
		}
		walked = append(walked, *node)
	}

	// Deepest node first, root-most last.
	for i, j := 0, len(walked)-1; i < j; i, j = i+1, j-1 {
		walked[i], walked[j] = walked[j], walked[i]
	}
	return walked
}

func (f *TagFolder) childByTag(tag string) *TagFolder {
	for i := range f.Children {
		if f.Children[i].Tag == tag {
			return &f.Children[i]
		}
	}
	return nil
}

// PathTags returns the non-empty segments of a path. These double as the
// tags a bookmark must carry to be visible at that path.
func PathTags(path string) []string {
	var tags []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			tags = append(tags, segment)
		}
	}
	return tags
}

// ChildPath returns the path of a child folder entered from currentPath.
func ChildPath(currentPath, tag string) string {
	if currentPath == "" || currentPath == "/" {
		return "/" + tag
	}
	return currentPath + "/" + tag
}

// ParentPath returns the path one level above path, or "/" at the top.
func ParentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx <= 0 {
		return "/"
	}
	return path[:idx]
}
