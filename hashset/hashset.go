package hashset

import (
	"github.com/webbmaffian/go-dict/hashmap"
	"github.com/webbmaffian/go-dict/hasher"
)

// Set tracks membership of keys. It shares the map's growth policy and,
// like the map, is not safe for concurrent use.
type Set[K comparable] struct {
	m *hashmap.Map[K, struct{}]
}

func New[K comparable](hash hasher.Func[K], capacity ...int) (s *Set[K], err error) {
	m, err := hashmap.New[K, struct{}](hash, capacity...)

	if err != nil {
		return
	}

	s = &Set[K]{
		m: m,
	}

	return
}

func NewSized[K comparable](hash hasher.Func[K], capacity int, loadFactor float64) (s *Set[K], err error) {
	m, err := hashmap.NewSized[K, struct{}](hash, capacity, loadFactor)

	if err != nil {
		return
	}

	s = &Set[K]{
		m: m,
	}

	return
}

// Add puts k in the set and reports whether it was absent.
func (s *Set[K]) Add(k K) bool {
	_, inserted := s.m.Insert(k)

	return inserted
}

func (s *Set[K]) Has(k K) bool {
	_, ok := s.m.Get(k)

	return ok
}

func (s *Set[K]) Len() int {
	return s.m.Len()
}

func (s *Set[K]) Cap() int {
	return s.m.Cap()
}

func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Each calls fn for every member, in no particular order, until fn
// returns false.
func (s *Set[K]) Each(fn func(K) bool) {
	iter := s.m.Iterate()

	for iter.Next() {
		if !fn(iter.Key()) {
			return
		}
	}
}
