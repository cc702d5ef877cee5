package utils

// Unsigned matches the integer types with a fixed width on every platform,
// which makes them safe to store raw in a memory-mapped file.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}
