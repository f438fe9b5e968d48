package common

// OrderedSet is a set that remembers insertion order.
// The zero value is ready to use.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// Add inserts items that are not already present and reports whether
// at least one of them was new.
func (s *OrderedSet[T]) Add(items ...T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{}, len(items))
	}

	added := false

	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}

		s.index[item] = struct{}{}
		s.items = append(s.items, item)
		added = true
	}

	return added
}

// Len returns the number of distinct items.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in first-inserted order.
// It never returns nil.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
