package hashmap

import (
	"github.com/webbmaffian/go-dict/dlist"
	"github.com/webbmaffian/go-dict/dynarr"
	"github.com/webbmaffian/go-dict/hasher"
)

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

// Separate-chaining hash table. Every bucket holds a linked chain of
// entries, and crossing the load factor doubles the bucket count. The map
// owns its buckets, chains and entries exclusively; it is not safe for
// concurrent use.
type Map[K comparable, V any] struct {
	buckets    bucketPool[K, V]
	hash       hasher.Func[K]
	loadFactor float64
	length     int
}

// New returns a map with the default load factor. Capacity defaults to
// DefaultCapacity buckets; a non-positive explicit capacity falls back to
// the default.
func New[K comparable, V any](hash hasher.Func[K], capacity ...int) (*Map[K, V], error) {
	n := DefaultCapacity

	if capacity != nil && capacity[0] > 0 {
		n = capacity[0]
	}

	return NewSized[K, V](hash, n, DefaultLoadFactor)
}

// NewSized returns a map with full control over the growth policy. All
// buckets are pre-populated as empty chains.
func NewSized[K comparable, V any](hash hasher.Func[K], capacity int, loadFactor float64) (*Map[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}

	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	if loadFactor <= 0 || loadFactor > 1 {
		return nil, ErrBadLoadFactor
	}

	m := &Map[K, V]{
		hash:       hash,
		loadFactor: loadFactor,
	}
	m.buckets.fill(capacity)

	return m, nil
}

// Insert returns a pointer to the value stored under key, creating a
// zero-valued entry if the key is absent. The returned pointer is valid
// until the next insert that triggers a rehash, and until Clear.
func (m *Map[K, V]) Insert(key K) (val *V, inserted bool) {
	bucket := m.bucket(key)

	if n := findEntry(bucket, key); n != nil {
		return &n.Value.val, false
	}

	n := bucket.PushBack(entry[K, V]{key: key})
	m.length++

	if m.Load() >= m.loadFactor {
		m.rehash()

		// The entry moved to another chain, so the node above is stale.
		return &findEntry(m.bucket(key), key).Value.val, true
	}

	return &n.Value.val, true
}

// Get returns the value stored under key without modifying the map.
func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	if n := findEntry(m.bucket(key), key); n != nil {
		return n.Value.val, true
	}

	return
}

// Set stores val under key and reports whether the key was absent.
func (m *Map[K, V]) Set(key K, val V) (inserted bool) {
	v, inserted := m.Insert(key)
	*v = val

	return
}

func (m *Map[K, V]) Len() int {
	return m.length
}

// Cap returns the bucket count. It only ever grows.
func (m *Map[K, V]) Cap() int {
	return m.buckets.count()
}

// Load returns the ratio of entries to buckets.
func (m *Map[K, V]) Load() float64 {
	return float64(m.length) / float64(m.buckets.count())
}

// Clear empties every bucket. Capacity is retained.
func (m *Map[K, V]) Clear() {
	for i := 0; i < m.buckets.count(); i++ {
		m.buckets.at(i).Clear()
	}

	m.length = 0
}

// Iterate returns an iterator over all entries, walking bucket by bucket.
// Any insert that triggers a rehash, and Clear, invalidate it.
func (m *Map[K, V]) Iterate() Iterator[K, V] {
	return Iterator[K, V]{
		m:      m,
		bucket: -1,
	}
}

func (m *Map[K, V]) bucket(key K) *dlist.List[entry[K, V]] {
	return m.buckets.at(int(m.hash(key) % uint64(m.buckets.count())))
}

// rehash drains every chain into a flat buffer, doubles the bucket count
// and redistributes. Entry count is unchanged; every key stays retrievable.
func (m *Map[K, V]) rehash() {
	drained := dynarr.New[entry[K, V]](m.length)

	for i := 0; i < m.buckets.count(); i++ {
		for n := m.buckets.at(i).Front(); n != nil; n = n.Next() {
			drained.Append(n.Value)
		}
	}

	m.buckets.reset(m.buckets.count() * 2)

	for _, e := range drained.Items() {
		m.bucket(e.key).PushBack(e)
	}
}

func findEntry[K comparable, V any](bucket *dlist.List[entry[K, V]], key K) *dlist.Node[entry[K, V]] {
	return bucket.FindFunc(func(e entry[K, V]) bool {
		return e.key == key
	})
}
