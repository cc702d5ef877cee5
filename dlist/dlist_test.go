package dlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushBackOrder(t *testing.T) {
	l := New[int]()

	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}

	require.Equal(t, 10, l.Len())

	i := 0

	for n := l.Front(); n != nil; n = n.Next() {
		require.Equal(t, i, n.Value)
		i++
	}

	require.Equal(t, 10, i)
}

func TestPushFront(t *testing.T) {
	l := New[int]()

	for i := 0; i < 5; i++ {
		l.PushFront(i)
	}

	require.Equal(t, 5, l.Len())
	require.Equal(t, 4, l.Front().Value)
	require.Equal(t, 0, l.Back().Value)

	want := []int{4, 3, 2, 1, 0}
	got := collect(l)
	require.Equal(t, want, got)
}

func TestZeroValue(t *testing.T) {
	var l List[string]

	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())

	l.PushBack("a")
	require.False(t, l.IsEmpty())
	require.Equal(t, "a", l.Front().Value)
	require.Equal(t, "a", l.Back().Value)
}

func TestBackwardTraversal(t *testing.T) {
	l := New[int]()

	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}

	i := 4

	for n := l.Back(); n != nil; n = n.Prev() {
		require.Equal(t, i, n.Value)
		i--
	}

	require.Equal(t, -1, i)
}

func TestRemoveLastRepeatedly(t *testing.T) {
	l := New[int]()

	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}

	for i := 0; i < 5; i++ {
		l.Remove(l.Back())
	}

	require.Equal(t, 5, l.Len())
	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(l))
	require.Equal(t, 4, l.Back().Value)
}

func TestRemoveHead(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)

	l.Remove(l.Front())
	require.Equal(t, 1, l.Len())
	require.Equal(t, 2, l.Front().Value)
	require.Equal(t, 2, l.Back().Value)
	require.Nil(t, l.Front().Prev())
	require.Nil(t, l.Front().Next())
}

func TestRemoveMiddle(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	mid := l.PushBack(2)
	l.PushBack(3)

	l.Remove(mid)
	require.Equal(t, []int{1, 3}, collect(l))
	require.Equal(t, l.Back(), l.Front().Next())
	require.Equal(t, l.Front(), l.Back().Prev())
}

func TestRemoveOnlyNode(t *testing.T) {
	l := New[int]()
	n := l.PushBack(1)

	l.Remove(n)
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}

func TestRemoveNoOps(t *testing.T) {
	l := New[int]()
	l.PushBack(1)

	// Nil node.
	l.Remove(nil)
	require.Equal(t, 1, l.Len())

	// Node owned by another list.
	other := New[int]()
	foreign := other.PushBack(9)
	l.Remove(foreign)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, other.Len())

	// Already removed node.
	n := l.PushBack(2)
	l.Remove(n)
	require.Equal(t, 1, l.Len())
	l.Remove(n)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, l.Front().Value)
}

func TestRemoveFromEmpty(t *testing.T) {
	l := New[int]()
	l.Remove(nil)
	require.True(t, l.IsEmpty())
}

func TestAt(t *testing.T) {
	l := New[int]()

	for i := 0; i < 5; i++ {
		l.PushBack(i * 10)
	}

	for i := 0; i < 5; i++ {
		n, err := l.At(i)
		require.NoError(t, err)
		require.Equal(t, i*10, n.Value)
	}

	_, err := l.At(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = l.At(5)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestClear(t *testing.T) {
	l := New[int]()

	stale := l.PushBack(1)
	l.PushBack(2)

	l.Clear()
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())

	l.Clear()
	require.True(t, l.IsEmpty())

	// A node detached by Clear must not corrupt the rebuilt list.
	l.PushBack(3)
	l.Remove(stale)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 3, l.Front().Value)
}

func TestClone(t *testing.T) {
	l := New[int]()

	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}

	clone := l.Clone()
	require.Equal(t, collect(l), collect(clone))

	// Mutations must not leak between the two.
	clone.Remove(clone.Front())
	require.Equal(t, 5, l.Len())
	require.Equal(t, 4, clone.Len())

	l.Front().Value = 100
	require.Equal(t, 1, clone.Front().Value)
}

func TestFind(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("b")
	l.PushBack("c")

	n := Find(l, "b")
	require.NotNil(t, n)
	require.Equal(t, "b", n.Value)

	second, err := l.At(1)
	require.NoError(t, err)
	require.Equal(t, second, n)

	require.Nil(t, Find(l, "z"))
}

func TestFindEmpty(t *testing.T) {
	l := New[int]()
	require.Nil(t, Find(l, 1))

	var zero List[int]
	require.Nil(t, Find(&zero, 1))
}

func TestFindFunc(t *testing.T) {
	l := New[int]()

	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}

	n := l.FindFunc(func(v int) bool {
		return v%2 == 1 && v > 4
	})
	require.NotNil(t, n)
	require.Equal(t, 5, n.Value)
}

func collect[T any](l *List[T]) []T {
	out := make([]T, 0, l.Len())

	for n := l.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}

	return out
}

func BenchmarkPushBack(b *testing.B) {
	l := New[int]()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.PushBack(i)
	}
}

func BenchmarkPushRemove(b *testing.B) {
	l := New[int]()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Remove(l.PushBack(i))
	}
}

func BenchmarkTraverse(b *testing.B) {
	l := New[int]()

	for i := 0; i < 1024; i++ {
		l.PushBack(i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for n := l.Front(); n != nil; n = n.Next() {
			_ = n.Value
		}
	}
}
