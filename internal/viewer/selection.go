package viewer

import "sort"

// SelectionSet tracks the item ids the viewer has multi-selected. It lives
// only in memory and is cleared on reset and after bulk mutations.
type SelectionSet struct {
	ids map[string]struct{}
}

func NewSelectionSet() SelectionSet {
	return SelectionSet{ids: map[string]struct{}{}}
}

// Toggle flips the membership of id and reports whether it is now selected.
func (s *SelectionSet) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *SelectionSet) SelectAll(ids []string) {
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *SelectionSet) Clear() {
	for id := range s.ids {
		delete(s.ids, id)
	}
}

func (s *SelectionSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in a stable order.
func (s *SelectionSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
