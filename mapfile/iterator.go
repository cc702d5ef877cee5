package mapfile

import (
	"github.com/webbmaffian/go-dict/internal/utils"
)

// Iterator walks the record section front to back, which is insertion
// order. Obtain one from File.Iterate.
type Iterator[K utils.Unsigned, V any] struct {
	f   *File[K, V]
	rec *record[K, V]
	idx uint64
}

func (iter *Iterator[K, V]) Next() bool {
	if iter.idx >= iter.f.head.length {
		return false
	}

	iter.rec = iter.f.recordAt(iter.f.head.recordOff(iter.idx))
	iter.idx++

	return true
}

func (iter *Iterator[K, V]) Key() K {
	return iter.rec.key
}

// Val points into the mapping. Writing through it requires the file to be
// open read-write.
func (iter *Iterator[K, V]) Val() *V {
	return &iter.rec.val
}
