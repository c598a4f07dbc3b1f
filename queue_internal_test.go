package listq

import (
	"testing"

	"deedles.dev/listq/internal/list"
	"github.com/stretchr/testify/require"
)

func TestCheckDetectsBadOwner(t *testing.T) {
	q := New()
	q.InsertTail("a")
	q.InsertTail("b")
	require.NoError(t, q.Check())

	q.head.Next().Next().Val = nil
	require.ErrorIs(t, q.Check(), ErrCorrupt)
}

func TestCheckDetectsStrayLink(t *testing.T) {
	q := New()
	q.InsertTail("a")
	q.InsertTail("b")
	q.InsertTail("c")

	// Linking b into another list without unlinking it from q first
	// leaves a pointing at a node that no longer points back.
	var stray list.Node[*Element]
	stray.Init()
	stray.Add(q.head.Next().Next())
	require.ErrorIs(t, q.Check(), ErrCorrupt)
}

func TestRemoveClearsLinks(t *testing.T) {
	q := New()
	q.InsertTail("a")
	q.InsertTail("b")

	e := q.RemoveHead(nil)
	require.Nil(t, e.node.Next())
	require.Nil(t, e.node.Prev())
	require.Same(t, e, e.node.Val)

	e = q.RemoveTail(nil)
	require.Nil(t, e.node.Next())
	require.True(t, q.head.Empty())
}

func TestDeleteReleases(t *testing.T) {
	q := New()
	q.InsertTail("a")
	q.InsertTail("a")
	first, second := q.head.Next().Val, q.head.Prev().Val

	q.DeleteDup()
	require.True(t, q.head.Empty())
	require.False(t, first.Linked())
	require.Nil(t, second.node.Val)
	require.Empty(t, first.Value)
}
