// Package tagging implements the tag mechanics of the bookmark editor:
// prefix-grouped suggestions from folder conventions, priority tags from the
// global vocabulary, and the merge that produces a bookmark's final tag set.
package tagging

import (
	"sort"
	"strings"

	"github.com/hahn/maakmai/internal/model"
)

// Group clusters vocabulary tags sharing a folder-declared prefix.
type Group struct {
	Prefix string
	Tags   []GroupedTag
}

// GroupedTag is a vocabulary tag inside a group, with the prefix and its
// separator stripped for display ("winter-mittens" under "winter" → "mittens").
type GroupedTag struct {
	Tag   string
	Label string
}

// GroupFolderTags partitions the vocabulary by the tag-group prefixes the
// given ancestor folders declare. Ancestors are expected deepest-first (as
// returned by FindFolders) so conventions closer to the leaf come first;
// each folder's own prefixes are sorted before flattening. A prefix with no
// matching vocabulary tags produces no group, and a prefix only ever
// produces one group no matter how many folders declare it.
func GroupFolderTags(ancestors []model.TagFolder, vocabulary []string) []Group {
	var groups []Group
	emitted := make(map[string]bool)

	for _, prefix := range flattenPrefixes(ancestors) {
		if emitted[prefix] {
			continue
		}

		var tags []GroupedTag
		for _, tag := range vocabulary {
			if tag == prefix || !strings.HasPrefix(tag, prefix) {
				continue
			}
			tags = append(tags, GroupedTag{Tag: tag, Label: stripPrefix(tag, prefix)})
		}
		if len(tags) == 0 {
			continue
		}

		emitted[prefix] = true
		groups = append(groups, Group{Prefix: prefix, Tags: tags})
	}

	return groups
}

func flattenPrefixes(ancestors []model.TagFolder) []string {
	var prefixes []string
	for _, folder := range ancestors {
		sorted := make([]string, len(folder.TagGroups))
		copy(sorted, folder.TagGroups)
		sort.Strings(sorted)
		prefixes = append(prefixes, sorted...)
	}
	return prefixes
}

// stripPrefix drops the prefix plus one separator character.
func stripPrefix(tag, prefix string) string {
	cut := len(prefix) + 1
	if cut > len(tag) {
		cut = len(tag)
	}
	return tag[cut:]
}
