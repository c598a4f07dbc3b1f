// Package listq provides a string queue backed by a circular
// doubly-linked list with a sentinel head, along with a set of
// in-place structural transformations over it: reversal, k-group
// reversal, quicksort, duplicate elimination, monotonic filtering and
// k-way merging.
//
// A Queue is not safe for concurrent use. Callers that share one
// across goroutines must provide their own locking.
package listq

// noCopy may be embedded into structs which must not be copied after
// first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
