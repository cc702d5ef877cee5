package hasher

import (
	"fmt"
	"math"
	"math/bits"
)

// Func maps a key to a 64-bit digest. Implementations must be deterministic
// and pure. A map shares nothing with its hash function.
type Func[K any] func(K) uint64

const goldenRatio = 0.6180339887

const fibonacci = 11400714819323198485

// String hashes s with a djb2-style multiply-by-33 loop over its bytes.
func String(s string) (h uint64) {
	h = 5328

	for i := 0; i < len(s); i++ {
		h = (h << 5) + h + uint64(s[i])
	}

	return
}

// Int32 hashes k by Knuth's multiplicative method: the fractional part of
// k times the golden-ratio conjugate, scaled to 31 bits. Negative keys are
// well-defined and wrap.
func Int32(k int32) uint64 {
	return fraction31(float64(k))
}

// Uint32 is the unsigned counterpart of Int32.
func Uint32(k uint32) uint64 {
	return fraction31(float64(k))
}

// Bytes hashes b with a BSD-checksum-style accumulator: rotate right one
// bit, add the byte. Distribution is weaker than the other families, which
// is acceptable for short binary keys.
func Bytes(b []byte) (h uint64) {
	for _, c := range b {
		h = bits.RotateLeft64(h, -1) + uint64(c)
	}

	return
}

// Uint64 hashes k by Fibonacci multiplication.
func Uint64(k uint64) uint64 {
	return k * fibonacci
}

// For returns the hash function for K's concrete type. Unsupported key
// types panic, so a bad key type fails at construction time rather than on
// every operation.
func For[K any]() Func[K] {
	var key K

	switch any(key).(type) {
	case string:
		return any(Func[string](String)).(Func[K])
	case []byte:
		return any(Func[[]byte](Bytes)).(Func[K])
	case int32:
		return any(Func[int32](Int32)).(Func[K])
	case uint32:
		return any(Func[uint32](Uint32)).(Func[K])
	case uint64:
		return any(Func[uint64](Uint64)).(Func[K])
	}

	panic(fmt.Sprintf("hasher: no hash function for key type %T", key))
}

// Negative products must wrap through int64; converting a negative float
// straight to uint64 is undefined.
func fraction31(k float64) uint64 {
	p := k * goldenRatio

	return uint64(int64((p - math.Trunc(p)) * (1 << 31)))
}
