package bst

import "cmp"

// DFSPreOrder returns the values visiting each node before its subtrees.
func (t *BinarySearchTree[T]) DFSPreOrder() []T {
	result := []T{}
	preOrderTraversal(t.root, &result)
	return result
}

// DFSInOrder returns the values in ascending order.
func (t *BinarySearchTree[T]) DFSInOrder() []T {
	result := []T{}
	inOrderTraversal(t.root, &result)
	return result
}

// DFSPostOrder returns the values visiting each node after its subtrees.
func (t *BinarySearchTree[T]) DFSPostOrder() []T {
	result := []T{}
	postOrderTraversal(t.root, &result)
	return result
}

// BFS returns the values level by level, left to right within a level.
func (t *BinarySearchTree[T]) BFS() []T {
	result := []T{}
	if t.root == nil {
		return result
	}

	queue := []*Node[T]{t.root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current.value)
		if current.left != nil {
			queue = append(queue, current.left)
		}
		if current.right != nil {
			queue = append(queue, current.right)
		}
	}
	return result
}

func preOrderTraversal[T cmp.Ordered](node *Node[T], result *[]T) {
	if node == nil {
		return
	}
	*result = append(*result, node.value)
	preOrderTraversal(node.left, result)
	preOrderTraversal(node.right, result)
}

// In-order traversal helper function
func inOrderTraversal[T cmp.Ordered](node *Node[T], result *[]T) {
	if node == nil {
		return
	}
	inOrderTraversal(node.left, result)
	*result = append(*result, node.value)
	inOrderTraversal(node.right, result)
}

func postOrderTraversal[T cmp.Ordered](node *Node[T], result *[]T) {
	if node == nil {
		return
	}
	postOrderTraversal(node.left, result)
	postOrderTraversal(node.right, result)
	*result = append(*result, node.value)
}
