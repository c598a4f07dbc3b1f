package list

import "iter"

// Node is a link of a circular doubly-linked list. A list is
// identified by a sentinel Node that never holds a value of its own;
// following next from the sentinel visits every member once and
// arrives back at the sentinel.
//
// Val is an owner reference set by whoever embeds the Node. The list
// itself never reads it.
type Node[T any] struct {
	Val        T
	prev, next *Node[T]
}

// Init makes n an empty list by linking it to itself.
func (n *Node[T]) Init() {
	n.prev = n
	n.next = n
}

// Initialized reports whether n has ever been linked.
func (n *Node[T]) Initialized() bool {
	return n.next != nil
}

// Next returns the node after n.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before n.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Linked reports whether n is currently part of a list.
func (n *Node[T]) Linked() bool {
	return n.next != nil && n.next != n
}

// Empty reports whether the list headed by n has no members.
func (n *Node[T]) Empty() bool {
	return n.next == n
}

// Singular reports whether the list headed by n has exactly one member.
func (n *Node[T]) Singular() bool {
	return n.next != n && n.next == n.prev
}

func insert[T any](n, prev, next *Node[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// Add links e directly after n.
func (n *Node[T]) Add(e *Node[T]) {
	insert(e, n, n.next)
}

// AddTail links e directly before n. When n is a sentinel this
// appends e to the end of the list.
func (n *Node[T]) AddTail(e *Node[T]) {
	insert(e, n.prev, n)
}

func unlink[T any](n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// Del unlinks n from whatever list it is in and clears its links so
// that it can no longer be mistaken for a live member.
func (n *Node[T]) Del() {
	unlink(n)
	n.prev = nil
	n.next = nil
}

// Move unlinks e and relinks it directly after n.
func (n *Node[T]) Move(e *Node[T]) {
	unlink(e)
	n.Add(e)
}

// MoveTail unlinks e and relinks it directly before n.
func (n *Node[T]) MoveTail(e *Node[T]) {
	unlink(e)
	n.AddTail(e)
}

func splice[T any](list, prev, next *Node[T]) {
	first := list.next
	last := list.prev

	first.prev = prev
	prev.next = first

	last.next = next
	next.prev = last
}

// Splice moves every member of the list headed by from to the front
// of the list headed by n, leaving from empty.
func (n *Node[T]) Splice(from *Node[T]) {
	if from.Empty() {
		return
	}
	splice(from, n, n.next)
	from.Init()
}

// SpliceTail moves every member of the list headed by from to the end
// of the list headed by n, leaving from empty.
func (n *Node[T]) SpliceTail(from *Node[T]) {
	if from.Empty() {
		return
	}
	splice(from, n.prev, n)
	from.Init()
}

// Nodes returns an iterator over the members of the list headed by n,
// front to back. It is safe to remove the currently-yielded node
// during iteration.
func (n *Node[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := n.next; cur != n; {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// Backward is like Nodes but runs back to front.
func (n *Node[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := n.prev; cur != n; {
			prev := cur.prev
			if !yield(cur) {
				return
			}
			cur = prev
		}
	}
}
