package mapfile

import (
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-dict/hashmap"
	"github.com/webbmaffian/go-dict/hasher"
	"github.com/webbmaffian/go-dict/internal/utils"
)

// Memory-mapped snapshot of a hash map: a validated header, a bucket table
// of chain heads, and fixed-size records linked by byte offset. Lookups
// read straight from the mapping. Like the in-memory map, a File is not
// safe for concurrent use.
type File[K utils.Unsigned, V any] struct {
	data     mmap.MMap
	file     *os.File
	head     *snapHeader
	readonly bool
}

// Create writes a fresh snapshot of src at path, replacing any existing
// file. The record section is sized to src plus the optional extra room
// for later adds. V must not contain any pointer nor slice.
func Create[K utils.Unsigned, V any](path string, src *hashmap.Map[K, V], extra ...int) (f *File[K, V], err error) {
	f = &File[K, V]{
		head: newSnapHeader[K, V](),
	}

	if f.head.valSize == 0 {
		return nil, ErrZeroValue
	}

	f.head.buckets = uint64(src.Cap())
	f.head.capacity = uint64(src.Len())

	if extra != nil && extra[0] > 0 {
		f.head.capacity += uint64(extra[0])
	}

	if f.file, err = os.Create(path); err != nil {
		return nil, err
	}

	if err = f.file.Truncate(int64(f.head.fileSize())); err != nil {
		f.file.Close()
		return nil, err
	}

	if f.data, err = mmap.Map(f.file, mmap.RDWR, 0); err != nil {
		f.file.Close()
		return nil, err
	}

	copy(f.data[:f.head.headSize], utils.PointerToBytes(f.head, int(f.head.headSize)))
	f.head = utils.BytesToPointer[snapHeader](f.data[:f.head.headSize])

	iter := src.Iterate()

	for iter.Next() {
		if err = f.Add(iter.Key(), *iter.Val()); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err = f.Flush(); err != nil {
		f.Close()
		return nil, err
	}

	return
}

// Open maps an existing snapshot read-write.
func Open[K utils.Unsigned, V any](path string) (*File[K, V], error) {
	return open[K, V](path, false)
}

// OpenRO maps an existing snapshot read-only. Adds are rejected.
func OpenRO[K utils.Unsigned, V any](path string) (*File[K, V], error) {
	return open[K, V](path, true)
}

func open[K utils.Unsigned, V any](path string, readonly bool) (f *File[K, V], err error) {
	f = &File[K, V]{
		head:     newSnapHeader[K, V](),
		readonly: readonly,
	}

	if f.head.valSize == 0 {
		return nil, ErrZeroValue
	}

	info, err := os.Stat(path)

	if err != nil {
		return nil, err
	}

	flag, prot := os.O_RDWR, mmap.RDWR

	if readonly {
		flag, prot = os.O_RDONLY, mmap.RDONLY
	}

	if f.file, err = os.OpenFile(path, flag, 0); err != nil {
		return nil, err
	}

	if err = f.validateHead(info.Size()); err != nil {
		f.file.Close()
		return nil, err
	}

	if f.data, err = mmap.Map(f.file, prot, 0); err != nil {
		f.file.Close()
		return nil, err
	}

	f.head = utils.BytesToPointer[snapHeader](f.data[:f.head.headSize])

	return
}

// validateHead reads the header straight from the file and rejects
// anything that does not match the instantiated key and value types, or
// whose counts disagree with the actual file length.
func (f *File[K, V]) validateHead(fileSize int64) (err error) {
	if fileSize < int64(f.head.headSize) {
		return ErrFileTooSmall
	}

	if _, err = f.file.Seek(0, io.SeekStart); err != nil {
		return
	}

	b := make([]byte, f.head.headSize)

	if _, err = io.ReadFull(f.file, b); err != nil {
		return
	}

	head := utils.BytesToPointer[snapHeader](b)

	if head.headSize != f.head.headSize {
		return ErrHeadSize
	}

	if head.keySize != f.head.keySize {
		return ErrKeySize
	}

	if head.valSize != f.head.valSize {
		return ErrValSize
	}

	if head.recSize != f.head.recSize {
		return ErrRecSize
	}

	if head.buckets == 0 {
		return ErrNoBuckets
	}

	// A capacity can never be less than the length.
	if head.capacity < head.length {
		return ErrCapacity
	}

	if fileSize != int64(head.fileSize()) {
		return ErrFileSize
	}

	return
}

// Get returns the value stored under key, walking the key's chain.
func (f *File[K, V]) Get(key K) (val V, ok bool) {
	for off := *f.offsetAt(f.head.bucketOff(f.bucket(key))); off != 0; {
		rec := f.recordAt(off)

		if rec.key == key {
			return rec.val, true
		}

		off = rec.next
	}

	return
}

// Add stores val under key: an existing record is updated in place, a new
// key appends a record and links it at the end of its chain. Returns
// ErrFull once the record section is exhausted.
func (f *File[K, V]) Add(key K, val V) error {
	if f.readonly {
		return ErrReadOnly
	}

	off := f.offsetAt(f.head.bucketOff(f.bucket(key)))

	for *off != 0 {
		rec := f.recordAt(*off)

		if rec.key == key {
			rec.val = val
			return nil
		}

		off = &rec.next
	}

	if f.head.length >= f.head.capacity {
		return ErrFull
	}

	idx := f.head.recordOff(f.head.length)
	rec := f.recordAt(idx)
	rec.next, rec.key, rec.val = 0, key, val

	*off = idx
	f.head.length++

	return nil
}

func (f *File[K, V]) Len() int {
	return int(f.head.length)
}

func (f *File[K, V]) Cap() int {
	return int(f.head.capacity)
}

func (f *File[K, V]) Buckets() int {
	return int(f.head.buckets)
}

// Load returns the ratio of records to buckets.
func (f *File[K, V]) Load() float64 {
	return float64(f.head.length) / float64(f.head.buckets)
}

// Iterate returns an iterator over all records in insertion order.
func (f *File[K, V]) Iterate() Iterator[K, V] {
	return Iterator[K, V]{
		f: f,
	}
}

func (f *File[K, V]) Flush() error {
	return f.data.Flush()
}

func (f *File[K, V]) Close() (err error) {
	if err = f.data.Unmap(); err != nil {
		return
	}

	return f.file.Close()
}

// The bucket for a key is derived from the key alone, so reopening a file
// never needs anything beyond the header.
func (f *File[K, V]) bucket(key K) uint64 {
	return hasher.Uint64(uint64(key)) % f.head.buckets
}

func (f *File[K, V]) offsetAt(off uint64) *uint64 {
	return utils.BytesToPointer[uint64](f.data[off : off+8])
}

func (f *File[K, V]) recordAt(off uint64) *record[K, V] {
	return utils.BytesToPointer[record[K, V]](f.data[off : off+f.head.recSize])
}
