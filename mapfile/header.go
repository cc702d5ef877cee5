package mapfile

import (
	"unsafe"

	"github.com/webbmaffian/go-dict/internal/utils"
)

func newSnapHeader[K utils.Unsigned, V any]() *snapHeader {
	var key K
	var val V
	var rec record[K, V]

	h := new(snapHeader)
	h.headSize = uint64(unsafe.Sizeof(*h))
	h.keySize = uint64(unsafe.Sizeof(key))
	h.valSize = uint64(unsafe.Sizeof(val))
	h.recSize = uint64(unsafe.Sizeof(rec))

	return h
}

// snapHeader sits at the start of the file. All fields are fixed-width so
// the header can be reinterpreted straight from the mapping.
type snapHeader struct {
	headSize uint64
	keySize  uint64
	valSize  uint64
	recSize  uint64
	buckets  uint64
	capacity uint64
	length   uint64
}

// record is one chain link. Records are fixed-size and chained by byte
// offset, with 0 as the nil link. K and V must not contain any pointer
// nor slice.
type record[K utils.Unsigned, V any] struct {
	next uint64
	key  K
	val  V
}

func (h snapHeader) fileSize() uint64 {
	return h.headSize + h.buckets*8 + h.capacity*h.recSize
}

// The bucket table follows the header: one 8-byte chain head per bucket.
func (h snapHeader) bucketOff(bucket uint64) uint64 {
	return h.headSize + bucket*8
}

// Records follow the bucket table.
func (h snapHeader) recordOff(i uint64) uint64 {
	return h.headSize + h.buckets*8 + i*h.recSize
}
