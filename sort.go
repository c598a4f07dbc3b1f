package listq

import "deedles.dev/listq/internal/list"

type span struct {
	lo, hi *list.Node[*Element]
}

// Sort sorts the values of q into ascending byte-wise order, or
// descending if descend is true. The sort is not stable. Values are
// swapped between elements rather than elements being relinked, so
// Element identity does not follow a value to its new position.
func (q *Queue) Sort(descend bool) {
	if q.Empty() || q.head.Singular() {
		return
	}

	stack := []span{{lo: q.head.Next(), hi: q.head.Prev()}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := partition(s.lo, s.hi)
		if p != s.lo && p.Prev() != s.lo {
			stack = append(stack, span{lo: s.lo, hi: p.Prev()})
		}
		if p != s.hi && p.Next() != s.hi {
			stack = append(stack, span{lo: p.Next(), hi: s.hi})
		}
	}

	if descend {
		q.Reverse()
	}
}

// partition rearranges the values in lo through hi inclusive around
// the value at hi and returns the node at which that value ends up.
func partition(lo, hi *list.Node[*Element]) *list.Node[*Element] {
	pivot := hi.Val.Value

	// i trails behind j at the last position known to hold a value
	// less than the pivot. It starts just before lo.
	i := lo.Prev()
	for j := lo; j != hi; j = j.Next() {
		if j.Val.Value < pivot {
			i = i.Next()
			swapValues(i, j)
		}
	}

	i = i.Next()
	swapValues(i, hi)
	return i
}

func swapValues(a, b *list.Node[*Element]) {
	if a == b {
		return
	}
	a.Val.Value, b.Val.Value = b.Val.Value, a.Val.Value
}
