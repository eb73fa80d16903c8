package model

// BuildForest derives the TagFolder forest from flat folder records.
//
// Children are grouped by parent id and attached recursively, preserving
// record order at every level. Construction is total: a record whose parent
// id does not resolve is treated as an extra root, and cyclic parent chains
// are broken with a visited set so corrupted data cannot cause unbounded
// recursion. Records trapped in a pure cycle are re-rooted in record order.
func BuildForest(records []Folder) []TagFolder {
	ids := make(map[string]bool, len(records))
	for _, r := range records {
		ids[r.ID] = true
	}

	childrenOf := make(map[string][]Folder)
	var roots []Folder
	for _, r := range records {
		if r.Parent == nil || !ids[*r.Parent] {
			roots = append(roots, r)
			continue
		}
		childrenOf[*r.Parent] = append(childrenOf[*r.Parent], r)
	}

	visited := make(map[string]bool, len(records))
	var build func(r Folder, isRoot bool) TagFolder
	build = func(r Folder, isRoot bool) TagFolder {
		visited[r.ID] = true
		var children []TagFolder
		for _, c := range childrenOf[r.ID] {
			if visited[c.ID] {
				continue
			}
			children = append(children, build(c, false))
		}
		return TagFolder{
			ID:        r.ID,
			Tag:       r.Tag,
			Children:  children,
			Root:      isRoot,
			TagGroups: r.TagGroups,
			Color:     r.Color,
		}
	}

	var forest []TagFolder
	for _, r := range roots {
		forest = append(forest, build(r, true))
	}

	// Anything still unvisited sits on a parent cycle; break the cycle by
	// promoting the first unvisited record to a root.
	for _, r := range records {
		if !visited[r.ID] {
			forest = append(forest, build(r, true))
		}
	}

	return forest
}
