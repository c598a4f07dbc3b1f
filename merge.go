package listq

import "deedles.dev/listq/internal/list"

// Merge merges the elements of every queue in qs into the first
// non-nil one. Each queue must already be sorted, ascending or
// descending according to descend, and the result is sorted the same
// way. Elements with equal values keep the order of the queues they
// came from. Every other queue is left empty. Merge returns the size
// of the merged queue.
//
// Queues are merged pairwise, doubling the stride each round, so the
// total work is O(n log k) for n elements across k queues.
func Merge(qs []*Queue, descend bool) int {
	live := make([]*Queue, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			q.init()
			live = append(live, q)
		}
	}
	if len(live) == 0 {
		return 0
	}

	before := func(a, b string) bool { return a < b }
	if descend {
		before = func(a, b string) bool { return a > b }
	}

	for stride := 1; stride < len(live); stride *= 2 {
		for i := 0; i+stride < len(live); i += 2 * stride {
			mergeInto(&live[i].head, &live[i+stride].head, before)
		}
	}

	return live[0].Size()
}

// mergeInto merges the sorted list headed by from into the sorted list
// headed by into. On equal values elements of into come first.
func mergeInto(into, from *list.Node[*Element], before func(a, b string) bool) {
	if into == from || from.Empty() {
		return
	}

	var merged list.Node[*Element]
	merged.Init()
	for !into.Empty() && !from.Empty() {
		a, b := into.Next(), from.Next()
		if before(b.Val.Value, a.Val.Value) {
			merged.MoveTail(b)
			continue
		}
		merged.MoveTail(a)
	}

	merged.SpliceTail(into)
	merged.SpliceTail(from)
	into.Splice(&merged)
}
