package listq_test

import (
	"slices"
	"testing"

	"deedles.dev/listq"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	qs := []*listq.Queue{
		fill(t, "a", "d", "g"),
		fill(t, "b", "e"),
		fill(t),
		fill(t, "c", "f", "h", "i"),
	}

	require.Equal(t, 9, listq.Merge(qs, false))
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, values(t, qs[0]))
	for _, q := range qs[1:] {
		require.True(t, q.Empty())
		require.NoError(t, q.Check())
	}
}

func TestMergeDescend(t *testing.T) {
	qs := []*listq.Queue{
		fill(t, "z", "m"),
		fill(t, "y", "n", "a"),
		fill(t, "x"),
	}

	require.Equal(t, 6, listq.Merge(qs, true))
	require.Equal(t, []string{"z", "y", "x", "n", "m", "a"}, values(t, qs[0]))
}

func TestMergeStable(t *testing.T) {
	var qs []*listq.Queue
	var want []*listq.Element
	for range 5 {
		q := fill(t, "a", "b")
		qs = append(qs, q)
	}
	for _, q := range qs {
		want = append(want, slices.Collect(q.All())[0])
	}
	for _, q := range qs {
		want = append(want, slices.Collect(q.All())[1])
	}

	require.Equal(t, 10, listq.Merge(qs, false))
	got := slices.Collect(qs[0].All())
	require.Len(t, got, len(want))
	for i := range want {
		require.Same(t, want[i], got[i], "position %v", i)
	}
}

func TestMergeEdges(t *testing.T) {
	require.Zero(t, listq.Merge(nil, false))
	require.Zero(t, listq.Merge([]*listq.Queue{nil, nil}, false))

	q := fill(t, "a", "b")
	require.Equal(t, 2, listq.Merge([]*listq.Queue{q}, false))
	require.Equal(t, []string{"a", "b"}, values(t, q))

	r := fill(t, "c")
	require.Equal(t, 3, listq.Merge([]*listq.Queue{nil, q, nil, r}, false))
	require.Equal(t, []string{"a", "b", "c"}, values(t, q))
	require.True(t, r.Empty())

	require.Equal(t, 3, listq.Merge([]*listq.Queue{q, q}, false))
	require.Equal(t, []string{"a", "b", "c"}, values(t, q))
}

func TestMergeSorted(t *testing.T) {
	var qs []*listq.Queue
	var all []string
	for i := range 7 {
		in := seq(i * 3)
		q := fill(t, in...)
		q.Sort(false)
		qs = append(qs, q)
		all = append(all, in...)
	}
	slices.Sort(all)

	require.Equal(t, len(all), listq.Merge(qs, false))
	require.Equal(t, all, values(t, qs[0]))
}
