package lighting

// Set is an insertion-ordered collection of shared light references.
// The same *L is usually held by a scene element as well, so mutating a
// light through either side is visible to both.
type Set[L any] struct {
	items []*L
	index map[*L]int
}

// NewSet creates an empty set.
func NewSet[L any]() *Set[L] {
	return &Set[L]{index: make(map[*L]int)}
}

// Insert adds a light. Returns false if it was nil or already present.
func (s *Set[L]) Insert(light *L) bool {
	if light == nil {
		return false
	}
	if _, ok := s.index[light]; ok {
		return false
	}
	s.index[light] = len(s.items)
	s.items = append(s.items, light)
	return true
}

// Remove drops a light while keeping the order of the others.
// Returns false if the light was not present.
func (s *Set[L]) Remove(light *L) bool {
	i, ok := s.index[light]
	if !ok {
		return false
	}
	delete(s.index, light)
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

// Contains reports whether the light is in the set.
func (s *Set[L]) Contains(light *L) bool {
	_, ok := s.index[light]
	return ok
}

// Len returns the number of lights.
func (s *Set[L]) Len() int { return len(s.items) }

// Items returns the lights in insertion order. The slice is owned by the
// set and is only valid until the next Insert or Remove.
func (s *Set[L]) Items() []*L { return s.items }

// Clear removes every light.
func (s *Set[L]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	clear(s.index)
}
