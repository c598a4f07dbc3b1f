package listq

// DeleteMid deletes the middle element of q. For an even number of
// elements the one just past the midpoint is deleted, so a queue of
// four loses its third element. It returns false if q is empty.
func (q *Queue) DeleteMid() bool {
	if q.Empty() {
		return false
	}

	head := &q.head
	slow, fast := head.Next(), head.Next()
	for {
		if fast.Next() == head {
			break
		}
		if fast.Next().Next() == head {
			slow = slow.Next()
			break
		}
		slow = slow.Next()
		fast = fast.Next().Next()
	}

	q.delete(slow)
	return true
}

// DeleteDup deletes every element whose value occurs more than once
// anywhere in q, including the first occurrence. The order of q does
// not matter. It returns false if q is empty.
func (q *Queue) DeleteDup() bool {
	if q.Empty() {
		return false
	}

	head := &q.head
	for cur := head.Next(); cur != head; {
		var dup bool
		for check := cur.Next(); check != head; {
			next := check.Next()
			if check.Val.Value == cur.Val.Value {
				q.delete(check)
				dup = true
			}
			check = next
		}

		next := cur.Next()
		if dup {
			q.delete(cur)
		}
		cur = next
	}

	return true
}

// Ascend deletes every element that has an element with a strictly
// smaller value anywhere after it, leaving q in non-decreasing order.
// It returns the resulting size of q.
func (q *Queue) Ascend() int {
	return q.monotonic(func(v, limit string) bool { return v > limit })
}

// Descend deletes every element that has an element with a strictly
// greater value anywhere after it, leaving q in non-increasing order.
// It returns the resulting size of q.
func (q *Queue) Descend() int {
	return q.monotonic(func(v, limit string) bool { return v < limit })
}

// monotonic walks q back to front, tracking the most extreme value
// seen so far. An element is deleted if violates reports that it is
// beyond that value, otherwise it becomes the new limit.
func (q *Queue) monotonic(violates func(v, limit string) bool) int {
	if q.Empty() {
		return 0
	}

	head := &q.head
	last := head.Prev()
	limit := last.Val.Value
	size := 1
	for cur := last.Prev(); cur != head; {
		prev := cur.Prev()
		if violates(cur.Val.Value, limit) {
			q.delete(cur)
		} else {
			limit = cur.Val.Value
			size++
		}
		cur = prev
	}

	return size
}
