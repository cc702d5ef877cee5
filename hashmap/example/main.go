package main

import (
	"log"
	"strings"

	"github.com/webbmaffian/go-dict/hashmap"
	"github.com/webbmaffian/go-dict/hasher"
)

func main() {
	m, err := hashmap.New[string, int](hasher.String)

	if err != nil {
		log.Println(err)
		return
	}

	text := "the quick brown fox jumps over the lazy dog while the fox naps"

	for _, word := range strings.Fields(text) {
		count, _ := m.Insert(word)
		*count++
	}

	log.Println("distinct words:", m.Len())
	log.Println("buckets:", m.Cap())
	log.Println("load:", m.Load())

	iter := m.Iterate()

	for iter.Next() {
		log.Println(iter.Key(), "=>", *iter.Val())
	}
}
