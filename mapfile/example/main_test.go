package main

import (
	"os"
	"testing"

	"github.com/webbmaffian/go-dict/hashmap"
	"github.com/webbmaffian/go-dict/hasher"
	"github.com/webbmaffian/go-dict/mapfile"
)

func BenchmarkSnapshot(b *testing.B) {
	const filename = "bench.db"

	m, err := hashmap.New[uint32, uint64](hasher.Uint32)

	if err != nil {
		b.Fatal(err)
	}

	for i := uint32(0); i < 10000; i++ {
		m.Set(i, uint64(i))
	}

	b.Cleanup(func() {
		os.Remove(filename)
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f, err := mapfile.Create(filename, m)

		if err != nil {
			b.Fatal(err)
		}

		f.Close()
	}
}

func BenchmarkSnapshotGet(b *testing.B) {
	const filename = "bench.db"
	const n = 1 << 14

	m, err := hashmap.New[uint32, uint64](hasher.Uint32)

	if err != nil {
		b.Fatal(err)
	}

	for i := uint32(0); i < n; i++ {
		m.Set(i, uint64(i))
	}

	f, err := mapfile.Create(filename, m)

	if err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() {
		f.Close()
		os.Remove(filename)
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f.Get(uint32(i & (n - 1)))
	}
}
