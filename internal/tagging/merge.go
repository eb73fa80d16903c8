package tagging

import "strings"

// Merge combines the four tag sources of the bookmark editor into the final
// persisted tag set: manually entered tags first, then the folder path tags
// of the save context, then selected priority tags, then selected
// folder-group tags. Blank and whitespace-only entries are dropped and
// duplicates collapse onto their first occurrence. Merging an already-merged
// set with itself yields the same set.
func Merge(manual, pathTags, priority, groupTags []string) []string {
	merged := []string{}
	seen := make(map[string]bool)

	for _, source := range [][]string{manual, pathTags, priority, groupTags} {
		for _, tag := range source {
			if strings.TrimSpace(tag) == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			merged = append(merged, tag)
		}
	}

	return merged
}

// SplitManual splits a free-text, comma-separated tag entry into individual
// tags, trimming surrounding whitespace. Blanks survive here and are dropped
// by Merge.
func SplitManual(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
