package dynarr

// DefaultCapacity is the number of slots allocated when no explicit capacity
// is given, and when an append hits a released backing buffer.
const DefaultCapacity = 16

// Array is a contiguous, index-addressable sequence backed by a single
// buffer that grows geometrically. The zero value is an empty array whose
// buffer is allocated lazily on first append.
type Array[T any] struct {
	buf    []T
	length int
}

// New returns an array with an eagerly allocated buffer. Capacity defaults
// to DefaultCapacity.
func New[T any](capacity ...int) *Array[T] {
	n := DefaultCapacity

	if capacity != nil && capacity[0] > 0 {
		n = capacity[0]
	}

	return &Array[T]{
		buf: make([]T, n),
	}
}

// Append stores v after the last live element. When the append fills the
// buffer, capacity doubles and every live element - v included - moves to
// the new buffer. Appending never fails.
func (arr *Array[T]) Append(v T) {
	// A released buffer comes back at the default capacity; an exactly
	// full one has to grow before the write.
	if arr.length >= len(arr.buf) {
		if arr.buf == nil {
			arr.buf = make([]T, DefaultCapacity)
		} else {
			arr.grow(len(arr.buf) * 2)
		}
	}

	arr.buf[arr.length] = v
	arr.length++

	if arr.length == len(arr.buf) {
		arr.grow(len(arr.buf) * 2)
	}
}

// At returns a pointer to the i-th element, through which the element may
// be mutated in place. The pointer is valid until the array grows, is
// resized or is released.
func (arr *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= arr.length {
		return nil, ErrOutOfRange
	}

	return &arr.buf[i], nil
}

// Set overwrites the i-th element.
func (arr *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= arr.length {
		return ErrOutOfRange
	}

	arr.buf[i] = v
	return nil
}

// Resize reallocates the buffer to exactly capacity slots, keeping the
// first min(Len, capacity) elements. Zero releases the buffer entirely;
// the next Append allocates a fresh default-capacity one.
func (arr *Array[T]) Resize(capacity int) {
	if capacity <= 0 {
		arr.buf = nil
		arr.length = 0
		return
	}

	if arr.length > capacity {
		arr.length = capacity
	}

	buf := make([]T, capacity)
	copy(buf, arr.buf[:arr.length])
	arr.buf = buf
}

// Clear resets the length to zero. Capacity is retained for reuse.
func (arr *Array[T]) Clear() {
	arr.length = 0
}

func (arr *Array[T]) Len() int {
	return arr.length
}

func (arr *Array[T]) Cap() int {
	return len(arr.buf)
}

// Items is a view of the live elements, sharing the backing buffer.
func (arr *Array[T]) Items() []T {
	return arr.buf[:arr.length]
}

// FindFunc scans for the first element matching the predicate and returns
// its index. When nothing matches, the index is Len and ok is false.
func (arr *Array[T]) FindFunc(match func(T) bool) (int, bool) {
	for i := 0; i < arr.length; i++ {
		if match(arr.buf[i]) {
			return i, true
		}
	}

	return arr.length, false
}

// Find scans for the first element equal to v.
func Find[T comparable](arr *Array[T], v T) (int, bool) {
	return arr.FindFunc(func(item T) bool {
		return item == v
	})
}

func (arr *Array[T]) grow(capacity int) {
	buf := make([]T, capacity)
	copy(buf, arr.buf[:arr.length])
	arr.buf = buf
}
