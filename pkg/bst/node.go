package bst

import "cmp"

// Node is a single cell of a BinarySearchTree. Its value never changes after
// construction and each child link is attached at most once.
type Node[T cmp.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// NewNode returns a node holding value with the given children (either may be nil).
func NewNode[T cmp.Ordered](value T, left, right *Node[T]) *Node[T] {
	return &Node[T]{value: value, left: left, right: right}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}
