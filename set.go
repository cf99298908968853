package structmap

// Set represents an unordered collection of unique members
type Set[K comparable] map[K]struct{}

// NewSet creates a set with supplied members
func NewSet[K comparable](members ...K) Set[K] {
	ret := make(Set[K], len(members))
	for _, member := range members {
		ret[member] = struct{}{}
	}
	return ret
}

// Has returns true if member belongs to the set
func (s Set[K]) Has(member K) bool {
	_, ok := s[member]
	return ok
}
