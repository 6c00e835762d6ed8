package utils

// Hashable is a key with a fast structural hash. HashCode is not collision
// resistant; EqualI resolves collisions inside a bucket.
type Hashable interface {
	HashCode() uint64
	EqualI(Hashable) bool
}

// Map is a hash-bucketed map from Hashable keys to arbitrary values.
type Map map[uint64][]mapEntry

type mapEntry struct {
	k Hashable
	v interface{}
}

func (m Map) Find(k Hashable) (interface{}, bool) {
	for _, e := range m[k.HashCode()] {
		if e.k.EqualI(k) {
			return e.v, true
		}
	}
	return nil, false
}

func (m Map) Set(k Hashable, v interface{}) {
	h := k.HashCode()
	s := m[h]
	for i, e := range s {
		if e.k.EqualI(k) {
			s[i].v = v
			return
		}
	}
	m[h] = append(s, mapEntry{k: k, v: v})
}

// Add inserts k only if absent, returning the stored value either way.
func (m Map) Add(k Hashable, v interface{}) interface{} {
	h := k.HashCode()
	s := m[h]
	for _, e := range s {
		if e.k.EqualI(k) {
			return e.v
		}
	}
	m[h] = append(s, mapEntry{k: k, v: v})
	return v
}
