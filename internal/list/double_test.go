package list_test

import (
	"slices"
	"testing"

	"deedles.dev/listq/internal/list"
	"github.com/stretchr/testify/require"
)

func newList(vals ...int) *list.Node[int] {
	var head list.Node[int]
	head.Init()
	for _, v := range vals {
		head.AddTail(&list.Node[int]{Val: v})
	}
	return &head
}

func collect(head *list.Node[int]) []int {
	var vals []int
	for n := range head.Nodes() {
		vals = append(vals, n.Val)
	}
	return vals
}

func TestInit(t *testing.T) {
	var head list.Node[int]
	require.False(t, head.Initialized())

	head.Init()
	require.True(t, head.Initialized())
	require.True(t, head.Empty())
	require.False(t, head.Singular())
	require.False(t, head.Linked())
	require.Same(t, &head, head.Next())
	require.Same(t, &head, head.Prev())
}

func TestAddDel(t *testing.T) {
	head := newList(2, 3)
	one := &list.Node[int]{Val: 1}
	head.Add(one)
	require.Equal(t, []int{1, 2, 3}, collect(head))
	require.True(t, one.Linked())

	one.Del()
	require.False(t, one.Linked())
	require.Nil(t, one.Next())
	require.Nil(t, one.Prev())
	require.Equal(t, []int{2, 3}, collect(head))

	head.Next().Del()
	require.True(t, head.Singular())
	head.Next().Del()
	require.True(t, head.Empty())
}

func TestMove(t *testing.T) {
	head := newList(1, 2, 3, 4)
	head.Move(head.Prev())
	require.Equal(t, []int{4, 1, 2, 3}, collect(head))

	head.MoveTail(head.Next())
	require.Equal(t, []int{1, 2, 3, 4}, collect(head))

	two := head.Next().Next()
	two.Next().Move(two)
	require.Equal(t, []int{1, 3, 2, 4}, collect(head))
}

func TestSplice(t *testing.T) {
	a := newList(3, 4)
	b := newList(1, 2)
	a.Splice(b)
	require.Equal(t, []int{1, 2, 3, 4}, collect(a))
	require.True(t, b.Empty())

	c := newList(5, 6)
	a.SpliceTail(c)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, collect(a))
	require.True(t, c.Empty())

	a.Splice(c)
	a.SpliceTail(c)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, collect(a))
}

func TestIterRemove(t *testing.T) {
	head := newList(1, 2, 3, 4, 5)
	for n := range head.Nodes() {
		if n.Val%2 == 0 {
			n.Del()
		}
	}
	require.Equal(t, []int{1, 3, 5}, collect(head))

	var back []int
	for n := range head.Backward() {
		back = append(back, n.Val)
		n.Del()
	}
	require.Equal(t, []int{5, 3, 1}, back)
	require.True(t, head.Empty())
}

func TestIterStop(t *testing.T) {
	head := newList(1, 2, 3)
	var got []int
	for n := range head.Nodes() {
		got = append(got, n.Val)
		if n.Val == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, got)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(func(yield func(int) bool) {
		for n := range head.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}))
}
