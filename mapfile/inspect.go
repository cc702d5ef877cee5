package mapfile

import (
	"io"
	"os"
	"unsafe"

	"github.com/webbmaffian/go-dict/internal/utils"
)

// Stats describes a snapshot file from its header alone.
type Stats struct {
	Buckets  int
	Capacity int
	Length   int
	KeySize  int
	ValSize  int
	RecSize  int
	FileSize int64
}

// Load returns the ratio of records to buckets.
func (s Stats) Load() float64 {
	return float64(s.Length) / float64(s.Buckets)
}

// Inspect reads a snapshot's header without knowing its key and value
// types, so any tool can report on any snapshot file.
func Inspect(path string) (s Stats, err error) {
	file, err := os.Open(path)

	if err != nil {
		return
	}

	defer file.Close()

	info, err := file.Stat()

	if err != nil {
		return
	}

	var head snapHeader
	headSize := int64(unsafe.Sizeof(head))

	if info.Size() < headSize {
		return s, ErrFileTooSmall
	}

	b := make([]byte, headSize)

	if _, err = io.ReadFull(file, b); err != nil {
		return
	}

	h := utils.BytesToPointer[snapHeader](b)

	if h.headSize != uint64(headSize) {
		return s, ErrHeadSize
	}

	if h.buckets == 0 {
		return s, ErrNoBuckets
	}

	if h.capacity < h.length {
		return s, ErrCapacity
	}

	if info.Size() != int64(h.fileSize()) {
		return s, ErrFileSize
	}

	s = Stats{
		Buckets:  int(h.buckets),
		Capacity: int(h.capacity),
		Length:   int(h.length),
		KeySize:  int(h.keySize),
		ValSize:  int(h.valSize),
		RecSize:  int(h.recSize),
		FileSize: info.Size(),
	}

	return
}
