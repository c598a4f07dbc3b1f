package listq

// Swap exchanges the positions of every pair of adjacent elements,
// the first with the second, the third with the fourth, and so on. A
// trailing odd element stays where it is.
func (q *Queue) Swap() {
	if q.Empty() {
		return
	}

	head := &q.head
	for cur := head.Next(); cur != head && cur.Next() != head; cur = cur.Next() {
		cur.Next().Move(cur)
	}
}

// Reverse reverses the order of the elements of q in place.
func (q *Queue) Reverse() {
	if q.Empty() {
		return
	}

	head := &q.head
	first := head.Next()
	for first.Next() != head {
		head.Move(first.Next())
	}
}

// ReverseK reverses the order of the elements of q in consecutive
// groups of k, starting from the front. A trailing group of fewer than
// k elements is left as it is. A k of one or less does nothing.
func (q *Queue) ReverseK(k int) {
	if q.Empty() || k <= 1 {
		return
	}

	head := &q.head
	for prev := head; ; {
		end := prev
		for range k {
			end = end.Next()
			if end == head {
				return
			}
		}

		// The first element of the group ends up as its last and is
		// the predecessor of the next group.
		first := prev.Next()
		for range k - 1 {
			prev.Move(first.Next())
		}
		prev = first
	}
}
