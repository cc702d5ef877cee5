package hashmap

import (
	"github.com/webbmaffian/go-dict/dlist"
	"github.com/webbmaffian/go-dict/dynarr"
)

type entry[K comparable, V any] struct {
	key K
	val V
}

// bucketPool is the bucket vector: one chain per slot, held in a dynamic
// array so the pool can be re-populated at a larger size on rehash.
type bucketPool[K comparable, V any] struct {
	arr dynarr.Array[dlist.List[entry[K, V]]]
}

func (p *bucketPool[K, V]) fill(n int) {
	for i := 0; i < n; i++ {
		p.arr.Append(dlist.List[entry[K, V]]{})
	}
}

// reset drops every chain and re-populates the pool with n empty ones.
func (p *bucketPool[K, V]) reset(n int) {
	p.arr.Clear()
	p.fill(n)
}

func (p *bucketPool[K, V]) at(i int) *dlist.List[entry[K, V]] {
	return &p.arr.Items()[i]
}

func (p *bucketPool[K, V]) count() int {
	return p.arr.Len()
}
