package catalog

import "slices"

// FavoriteSet tracks favorited item IDs. It is independent of any catalog:
// toggling an unknown ID is allowed.
type FavoriteSet struct {
	ids map[string]struct{}
}

func NewFavoriteSet(ids ...string) *FavoriteSet {
	s := &FavoriteSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle adds id if absent and removes it if present. It returns whether id
// is favorited afterwards.
func (s *FavoriteSet) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *FavoriteSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *FavoriteSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in sorted order.
func (s *FavoriteSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
