package viewer

import (
	"testing"

	"backend-lumashare/internal/gallery"
)

func TestMatchesSearchFields(t *testing.T) {
	item := gallery.Item{
		Title:       "Sunset over the Bay",
		Description: "Golden hour shot",
		Category:    "landscape",
		Tags:        []string{"sunset", "water"},
	}

	cases := []struct {
		term string
		want bool
	}{
		{"", true},
		{"sunset", true},
		{"SUNSET", true},
		{"golden", true},
		{"landsc", true},
		{"water", true},
		{"  bay  ", true},
		{"portrait", false},
	}
	for _, tc := range cases {
		if got := Matches(item, tc.term, CategoryAll); got != tc.want {
			t.Fatalf("Matches(term=%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	item := gallery.Item{Title: "Pier", Category: "landscape"}

	if !Matches(item, "", "landscape") {
		t.Fatalf("matching category must pass")
	}
	if !Matches(item, "", CategoryAll) {
		t.Fatalf("category all must pass everything")
	}
	if !Matches(item, "", "") {
		t.Fatalf("empty category must pass everything")
	}
	if Matches(item, "", "portrait") {
		t.Fatalf("mismatched category must fail")
	}
	if Matches(item, "pier", "portrait") {
		t.Fatalf("category narrows before the search term")
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	items := []gallery.Item{
		{ID: "1", Title: "alpha sunset"},
		{ID: "2", Title: "beta"},
		{ID: "3", Title: "gamma sunset"},
	}

	out := Apply(items, "sunset", CategoryAll)
	if len(out) != 2 || out[0].ID != "1" || out[1].ID != "3" {
		t.Fatalf("unexpected filtered list: %+v", out)
	}

	if out := Apply(items, "nothing", CategoryAll); len(out) != 0 {
		t.Fatalf("expected no matches, got %+v", out)
	}
}
