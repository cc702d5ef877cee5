package hashmap

type mapError string

var _ error = mapError("")

func (err mapError) Error() string {
	return string(err)
}

const (
	ErrNilHasher     = mapError("hash function must not be nil")
	ErrBadCapacity   = mapError("capacity must be at least 1")
	ErrBadLoadFactor = mapError("load factor must be within (0, 1]")
)
