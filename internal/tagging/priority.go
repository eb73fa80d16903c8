package tagging

import (
	"fmt"
	"sort"
)

// Suggestion is a globally frequent tag offered as a quick-select option.
type Suggestion struct {
	Tag   string
	Label string
	Count int
}

// PriorityTags orders the tag vocabulary by usage count, most used first,
// with the tag itself breaking ties so the output is stable. Labels carry
// the count for display, "knitting (9)".
func PriorityTags(counts map[string]int) []Suggestion {
	suggestions := make([]Suggestion, 0, len(counts))
	for tag, count := range counts {
		suggestions = append(suggestions, Suggestion{
			Tag:   tag,
			Label: fmt.Sprintf("%s (%d)", tag, count),
			Count: count,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Count != suggestions[j].Count {
			return suggestions[i].Count > suggestions[j].Count
		}
		return suggestions[i].Tag < suggestions[j].Tag
	})

	return suggestions
}

// Vocabulary returns just the tag strings of the given suggestions, in order.
func Vocabulary(suggestions []Suggestion) []string {
	tags := make([]string, len(suggestions))
	for i, s := range suggestions {
		tags[i] = s.Tag
	}
	return tags
}
