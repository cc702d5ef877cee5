package dlist

// List is a doubly-linked sequence of nodes. The zero value is an empty
// list ready for use. Nodes are owned by exactly one list at a time.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// Node carries one value and its links. A node returned from a push stays
// valid until it is removed or its list is cleared.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
	list  *List[T]
}

// Next returns the following node, or nil at the back of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the front of the list.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{
		Value: v,
		prev:  l.tail,
		list:  l,
	}

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.size++

	return n
}

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{
		Value: v,
		next:  l.head,
		list:  l,
	}

	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}

	l.head = n
	l.size++

	return n
}

// Remove unlinks n from the list. A nil node, a node owned by another list
// or a node that has already been removed is left alone.
func (l *List[T]) Remove(n *Node[T]) {
	if n == nil || n.list != l {
		return
	}

	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.prev = nil
	n.next = nil
	n.list = nil
	l.size--
}

// Front returns the first node, or nil when the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node, or nil when the list is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// At walks to the i-th node from the front.
func (l *List[T]) At(i int) (*Node[T], error) {
	if i < 0 || i >= l.size {
		return nil, ErrOutOfRange
	}

	n := l.head

	for ; i > 0; i-- {
		n = n.next
	}

	return n, nil
}

// Clear detaches every node and empties the list. Removing a detached node
// afterwards is a no-op, so stale node references stay harmless.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n.list = nil
		n = next
	}

	l.head = nil
	l.tail = nil
	l.size = 0
}

// Clone returns a deep copy with fresh nodes. Values are copied as-is.
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()

	for n := l.head; n != nil; n = n.next {
		clone.PushBack(n.Value)
	}

	return clone
}

// FindFunc returns the first node matching the predicate, or nil.
func (l *List[T]) FindFunc(match func(T) bool) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if match(n.Value) {
			return n
		}
	}

	return nil
}

// Find returns the first node whose value equals v, or nil.
func Find[T comparable](l *List[T], v T) *Node[T] {
	return l.FindFunc(func(item T) bool {
		return item == v
	})
}
