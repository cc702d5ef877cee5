package main

import (
	"log"

	"github.com/webbmaffian/go-dict/hashmap"
	"github.com/webbmaffian/go-dict/hasher"
	"github.com/webbmaffian/go-dict/mapfile"
)

func main() {
	m, err := hashmap.New[uint32, uint64](hasher.Uint32)

	if err != nil {
		log.Println(err)
		return
	}

	for i := uint32(0); i < 1000; i++ {
		m.Set(i, uint64(i)*uint64(i))
	}

	log.Println("built map:", m.Len(), "entries in", m.Cap(), "buckets")

	f, err := mapfile.Create("squares.bin", m, 100)

	if err != nil {
		log.Println(err)
		return
	}

	if err = f.Close(); err != nil {
		log.Println(err)
		return
	}

	ro, err := mapfile.OpenRO[uint32, uint64]("squares.bin")

	if err != nil {
		log.Println(err)
		return
	}

	defer ro.Close()

	for _, k := range []uint32{1, 10, 100, 999} {
		v, ok := ro.Get(k)
		log.Println(k, "=>", v, ok)
	}

	log.Println("snapshot:", ro.Len(), "of", ro.Cap(), "records used")
}
