package types

import "math/bits"

// MaxComponentTypes is the capacity of a ComponentSet. Registration fails
// once a world has seen this many distinct component types.
const MaxComponentTypes = 256

const maskWords = MaxComponentTypes / 64

// ComponentSet is a fixed-width bitmask over ComponentIDs. Every live entity
// carries one as its component signature; filters match against it, and
// entity destruction walks it to purge exactly the stores the entity occupies.
type ComponentSet [maskWords]uint64

func (s *ComponentSet) Add(id ComponentID) {
	s[uint(id)/64] |= uint64(1) << (uint(id) % 64)
}

func (s *ComponentSet) Remove(id ComponentID) {
	s[uint(id)/64] &^= uint64(1) << (uint(id) % 64)
}

func (s ComponentSet) Contains(id ComponentID) bool {
	return s[uint(id)/64]&(uint64(1)<<(uint(id)%64)) != 0
}

// ContainsAll reports whether every bit of other is also set in s.
func (s ComponentSet) ContainsAll(other ComponentSet) bool {
	for i := range s {
		if s[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one bit.
func (s ComponentSet) Intersects(other ComponentSet) bool {
	for i := range s {
		if s[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

func (s ComponentSet) IsEmpty() bool {
	for i := range s {
		if s[i] != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of set bits.
func (s ComponentSet) Len() int {
	n := 0
	for i := range s {
		n += bits.OnesCount64(s[i])
	}
	return n
}

// Union returns the set of bits present in s or other.
func (s ComponentSet) Union(other ComponentSet) ComponentSet {
	var out ComponentSet
	for i := range s {
		out[i] = s[i] | other[i]
	}
	return out
}

// Intersect returns the set of bits present in both s and other.
func (s ComponentSet) Intersect(other ComponentSet) ComponentSet {
	var out ComponentSet
	for i := range s {
		out[i] = s[i] & other[i]
	}
	return out
}

// ToSlice returns the set IDs in ascending order.
func (s ComponentSet) ToSlice() []ComponentID {
	ids := make([]ComponentID, 0, s.Len())
	s.Each(func(id ComponentID) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Each calls fn for every set bit in ascending ID order. Iteration stops
// early if fn returns false.
func (s ComponentSet) Each(fn func(ComponentID) bool) {
	for i := range s {
		word := s[i]
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			if !fn(ComponentID(i*64 + bit)) {
				return
			}
			word &= word - 1
		}
	}
}
