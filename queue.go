package listq

import (
	"errors"
	"fmt"
	"iter"

	"deedles.dev/listq/internal/list"
)

// ErrCorrupt is wrapped by every error returned from [Queue.Check].
var ErrCorrupt = errors.New("listq: corrupt queue")

// An Element is a single entry of a Queue.
type Element struct {
	Value string
	node  list.Node[*Element]
}

func newElement(s string) *Element {
	e := Element{Value: s}
	e.node.Val = &e
	return &e
}

// Release drops the Element's payload. It should be called by the
// owner of an Element returned by [Queue.RemoveHead] or
// [Queue.RemoveTail] once it is done with it. It is safe to call on a
// nil Element and more than once. Release does nothing to an Element
// that is still linked into a Queue.
func (e *Element) Release() {
	if e == nil || e.Linked() {
		return
	}
	e.Value = ""
	e.node.Val = nil
}

// Linked reports whether e is currently a member of a Queue.
func (e *Element) Linked() bool {
	return e != nil && e.node.Linked()
}

// A Queue is a list of strings. A zero value Queue is empty and ready
// to use, as is one returned by [New]. A Queue must not be copied
// after first use.
//
// Every method may be called on a nil *Queue, in which case it does
// nothing and returns a zero result.
type Queue struct {
	noCopy noCopy

	head list.Node[*Element]
}

// New returns an empty queue.
func New() *Queue {
	var q Queue
	q.head.Init()
	return &q
}

func (q *Queue) init() {
	if !q.head.Initialized() {
		q.head.Init()
	}
}

// Free removes and releases every element of q. The Queue itself can
// still be used afterwards and behaves as if it was empty.
func (q *Queue) Free() {
	if q == nil || !q.head.Initialized() {
		return
	}

	for n := range q.head.Nodes() {
		q.delete(n)
	}
	q.head = list.Node[*Element]{}
}

// Empty reports whether q has no elements.
func (q *Queue) Empty() bool {
	return q == nil || !q.head.Initialized() || q.head.Empty()
}

// InsertHead adds a new element containing s to the front of q. It
// returns false if q is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	q.init()

	q.head.Add(&newElement(s).node)
	return true
}

// InsertTail adds a new element containing s to the back of q. It
// returns false if q is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	q.init()

	q.head.AddTail(&newElement(s).node)
	return true
}

// RemoveHead detaches the first element of q and returns it, or nil
// if q is empty. If sp is not empty, up to len(sp)-1 bytes of the
// element's value are copied into it followed by a terminating zero
// byte.
//
// The caller owns the returned Element.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.detach(q.head.Next(), sp)
}

// RemoveTail is like [Queue.RemoveHead] but detaches the last element.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.detach(q.head.Prev(), sp)
}

func (q *Queue) detach(n *list.Node[*Element], sp []byte) *Element {
	e := n.Val
	copyValue(sp, e.Value)
	n.Del()
	return e
}

// delete unlinks n and releases its element.
func (q *Queue) delete(n *list.Node[*Element]) {
	n.Del()
	n.Val.Release()
}

func copyValue(sp []byte, v string) {
	if len(sp) == 0 {
		return
	}
	c := copy(sp[:len(sp)-1], v)
	sp[c] = 0
}

// Size counts the elements in q.
func (q *Queue) Size() int {
	if q.Empty() {
		return 0
	}

	var size int
	for range q.head.Nodes() {
		size++
	}
	return size
}

// All returns an iterator over the elements of q from front to back.
// It is safe to remove the currently-yielded element during iteration.
func (q *Queue) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if q.Empty() {
			return
		}
		for n := range q.head.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of q from back to
// front.
func (q *Queue) Backward() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if q.Empty() {
			return
		}
		for n := range q.head.Backward() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of q from front to back.
func (q *Queue) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := range q.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Check walks q in both directions and verifies that its links form a
// single consistent cycle through the sentinel. The returned error, if
// any, wraps [ErrCorrupt].
func (q *Queue) Check() error {
	if q == nil || !q.head.Initialized() {
		return nil
	}

	head := &q.head
	seen := make(map[*list.Node[*Element]]struct{})
	var forward int
	for cur := head.Next(); cur != head; cur = cur.Next() {
		if cur == nil {
			return fmt.Errorf("%w: nil link after element %d", ErrCorrupt, forward)
		}
		if _, ok := seen[cur]; ok {
			return fmt.Errorf("%w: cycle at element %d does not pass the head", ErrCorrupt, forward)
		}
		seen[cur] = struct{}{}

		if cur.Next() == nil || cur.Next().Prev() != cur {
			return fmt.Errorf("%w: element %d is not linked back by its successor", ErrCorrupt, forward)
		}
		if cur.Val == nil || &cur.Val.node != cur {
			return fmt.Errorf("%w: element %d has a bad owner", ErrCorrupt, forward)
		}
		forward++
	}
	if head.Next().Prev() != head {
		return fmt.Errorf("%w: head is not linked back by its successor", ErrCorrupt)
	}

	var backward int
	for cur := head.Prev(); cur != head; cur = cur.Prev() {
		if _, ok := seen[cur]; !ok {
			return fmt.Errorf("%w: element %d from the back is not reachable from the front", ErrCorrupt, backward)
		}
		backward++
		if backward > forward {
			break
		}
	}
	if backward != forward {
		return fmt.Errorf("%w: %d elements forward but %d backward", ErrCorrupt, forward, backward)
	}

	return nil
}
