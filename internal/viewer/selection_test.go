package viewer

import (
	"reflect"
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelectionSet()
	if !s.Toggle("a") {
		t.Fatalf("first toggle must select")
	}
	if !s.Has("a") || s.Len() != 1 {
		t.Fatalf("expected a selected")
	}
	if s.Toggle("a") {
		t.Fatalf("second toggle must deselect")
	}
	if s.Has("a") || s.Len() != 0 {
		t.Fatalf("expected a deselected")
	}
}

func TestSelectionSelectAllAndClear(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle("b")
	s.SelectAll([]string{"a", "b", "c"})
	if s.Len() != 3 {
		t.Fatalf("expected 3 selected, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty after clear")
	}
}

func TestSelectionIDsSorted(t *testing.T) {
	s := NewSelectionSet()
	s.SelectAll([]string{"c", "a", "b"})
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected sorted ids, got %v", got)
	}
}
