// Package equivalence finds trees that hold the same set of values, whatever
// order the values were inserted in.
package equivalence

import (
	"sync"

	"github.com/espencer199015/Binary-Search-Trees/pkg/bst"
)

// Entry is a numbered tree taking part in an equivalence run. ID is the
// entry's position in the slice handed to GroupByHash and Group.
type Entry struct {
	ID   int
	Tree *bst.BinarySearchTree[int]
	Hash int

	once    sync.Once
	inOrder []int
}

// NewEntries builds one tree per value list, numbering them from zero.
// recursive selects InsertRecursively over Insert.
func NewEntries(values [][]int, recursive bool) []*Entry {
	entries := make([]*Entry, len(values))
	for i, vals := range values {
		var tree *bst.BinarySearchTree[int]
		if recursive {
			tree = bst.BuildRecursively(vals...)
		} else {
			tree = bst.Build(vals...)
		}
		entries[i] = &Entry{ID: i, Tree: tree}
	}
	return entries
}

// InOrder returns the tree's in-order traversal, computed once.
func (e *Entry) InOrder() []int {
	e.once.Do(func() {
		e.inOrder = e.Tree.DFSInOrder()
	})
	return e.inOrder
}
