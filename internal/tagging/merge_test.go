package tagging_test

import (
	"reflect"
	"testing"

	"github.com/hahn/maakmai/internal/tagging"
)

func TestMerge_DropsBlanksAndDuplicates(t *testing.T) {
	got := tagging.Merge([]string{"a", "b", "a", "", " "}, nil, nil, nil)

	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_SourceOrder(t *testing.T) {
	got := tagging.Merge(
		[]string{"manual"},
		[]string{"knitting", "mittens"},
		[]string{"priority", "knitting"},
		[]string{"winter-wool", "mittens"},
	)

	want := []string{"manual", "knitting", "mittens", "priority", "winter-wool"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	merged := tagging.Merge([]string{"a", "b", "a", "", " "}, []string{"c"}, nil, nil)
	again := tagging.Merge(merged, merged, merged, merged)

	if !reflect.DeepEqual(merged, again) {
		t.Errorf("merging a merged set changed it: %v vs %v", merged, again)
	}
}

func TestMerge_EmptySources(t *testing.T) {
	got := tagging.Merge(nil, nil, nil, nil)

	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got == nil {
		t.Error("expected non-nil slice for persistence")
	}
}

func TestSplitManual(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"knitting", []string{"knitting"}},
		{"knitting, mittens", []string{"knitting", "mittens"}},
		{" a ,, b ", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		got := tagging.SplitManual(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitManual(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPriorityTags_OrderAndLabels(t *testing.T) {
	counts := map[string]int{
		"knitting": 9,
		"mittens":  6,
		"crochet":  6,
		"scarf":    3,
	}

	suggestions := tagging.PriorityTags(counts)

	want := []string{"knitting", "crochet", "mittens", "scarf"}
	if got := tagging.Vocabulary(suggestions); !reflect.DeepEqual(got, want) {
		t.Errorf("priority order = %v, want %v", got, want)
	}
	if suggestions[0].Label != "knitting (9)" {
		t.Errorf("label = %q, want %q", suggestions[0].Label, "knitting (9)")
	}
}

func TestPriorityTags_Empty(t *testing.T) {
	if got := tagging.PriorityTags(nil); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}
