package bst

import "cmp"

// BinarySearchTree holds a set of ordered values. Every value in a node's left
// subtree is smaller than the node's value and every value in its right
// subtree is larger. It is not safe for concurrent mutation.
type BinarySearchTree[T cmp.Ordered] struct {
	root *Node[T]
}

// New returns an empty tree.
func New[T cmp.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

// FromRoot returns a tree that owns root. The caller guarantees root already
// satisfies the ordering invariant.
func FromRoot[T cmp.Ordered](root *Node[T]) *BinarySearchTree[T] {
	return &BinarySearchTree[T]{root: root}
}

// Build inserts values in order into a new tree.
func Build[T cmp.Ordered](values ...T) *BinarySearchTree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// BuildRecursively is Build using InsertRecursively.
func BuildRecursively[T cmp.Ordered](values ...T) *BinarySearchTree[T] {
	t := New[T]()
	for _, v := range values {
		t.InsertRecursively(v)
	}
	return t
}

func (t *BinarySearchTree[T]) Root() *Node[T] {
	return t.root
}

// Len counts the nodes in the tree.
func (t *BinarySearchTree[T]) Len() int {
	return count(t.root)
}

func count[T cmp.Ordered](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return 1 + count(node.left) + count(node.right)
}

// Insert adds value to the tree unless it is already present and returns the
// tree.
func (t *BinarySearchTree[T]) Insert(value T) *BinarySearchTree[T] {
	if t.root == nil {
		t.root = &Node[T]{value: value}
		return t
	}

	current := t.root
	for {
		switch {
		case value < current.value:
			if current.left == nil {
				current.left = &Node[T]{value: value}
				return t
			}
			current = current.left
		case value > current.value:
			if current.right == nil {
				current.right = &Node[T]{value: value}
				return t
			}
			current = current.right
		default:
			return t
		}
	}
}

// InsertRecursively behaves like Insert but descends by recursion, so it uses
// stack space proportional to the tree height.
func (t *BinarySearchTree[T]) InsertRecursively(value T) *BinarySearchTree[T] {
	t.root = insert(t.root, value)
	return t
}

func insert[T cmp.Ordered](node *Node[T], value T) *Node[T] {
	if node == nil {
		return &Node[T]{value: value}
	}
	if value < node.value {
		node.left = insert(node.left, value)
	} else if value > node.value {
		node.right = insert(node.right, value)
	}
	return node
}

// Find returns the node holding value, or nil if the tree does not contain it.
func (t *BinarySearchTree[T]) Find(value T) *Node[T] {
	current := t.root
	for current != nil {
		switch {
		case value == current.value:
			return current
		case value < current.value:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

// FindRecursively behaves like Find but descends by recursion.
func (t *BinarySearchTree[T]) FindRecursively(value T) *Node[T] {
	return find(t.root, value)
}

func find[T cmp.Ordered](node *Node[T], value T) *Node[T] {
	if node == nil {
		return nil
	}
	if value == node.value {
		return node
	}
	if value < node.value {
		return find(node.left, value)
	}
	return find(node.right, value)
}
