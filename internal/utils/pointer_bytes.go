package utils

import (
	"unsafe"
)

// PointerToBytes exposes the memory behind val as a byte slice of the given
// length. T must not contain any pointer nor slice.
func PointerToBytes[T any](val *T, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), length)
}

// BytesToPointer reinterprets the start of b as a value of type T. The
// returned pointer aliases b and is valid for as long as b is.
func BytesToPointer[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(&b[0]))
}
