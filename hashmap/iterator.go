package hashmap

import (
	"github.com/webbmaffian/go-dict/dlist"
)

// Iterator walks every entry of a map, bucket by bucket and within each
// bucket in chain order. Obtain one from Map.Iterate; a fresh call
// restarts from the first bucket.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	node   *dlist.Node[entry[K, V]]
	bucket int
}

func (iter *Iterator[K, V]) Next() bool {
	if iter.node != nil {
		if iter.node = iter.node.Next(); iter.node != nil {
			return true
		}
	}

	if iter.bucket >= iter.m.buckets.count()-1 {
		return false
	}

	iter.bucket++
	iter.node = iter.m.buckets.at(iter.bucket).Front()

	if iter.node == nil {
		return iter.Next()
	}

	return true
}

func (iter *Iterator[K, V]) Key() K {
	return iter.node.Value.key
}

// Val returns a pointer to the current value, through which it may be
// mutated in place.
func (iter *Iterator[K, V]) Val() *V {
	return &iter.node.Value.val
}
