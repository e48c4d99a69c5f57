package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/espencer199015/Binary-Search-Trees/pkg/bst"
)

var traversalOrders = []string{"pre", "in", "post", "bfs"}

func newTraverseCmd(cfg *config) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print tree traversals",
		Long: `The traverse command prints the pre-order, in-order, post-order and
breadth-first traversals of every tree.

Example:
  echo "8 3 10 1 6 14 4 7 13" | bstctl traverse
  bstctl traverse -i trees.txt --order in`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := selectOrders(order)
			if err != nil {
				return err
			}
			return runTraverse(cmd, cfg, orders)
		},
	}
	cmd.Flags().StringVar(&order, "order", "all", "Traversal order: pre, in, post, bfs or all")
	return cmd
}

func selectOrders(order string) ([]string, error) {
	if order == "all" {
		return traversalOrders, nil
	}
	for _, o := range traversalOrders {
		if o == order {
			return []string{o}, nil
		}
	}
	return nil, fmt.Errorf("unknown traversal order %q", order)
}

func traverse(tree *bst.BinarySearchTree[int], order string) []int {
	switch order {
	case "pre":
		return tree.DFSPreOrder()
	case "in":
		return tree.DFSInOrder()
	case "post":
		return tree.DFSPostOrder()
	default:
		return tree.BFS()
	}
}

func runTraverse(cmd *cobra.Command, cfg *config, orders []string) error {
	trees, err := cfg.loadTrees(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.jsonOut {
		type treeTraversals struct {
			ID         int              `json:"id"`
			Traversals map[string][]int `json:"traversals"`
		}
		result := make([]treeTraversals, len(trees))
		for i, tree := range trees {
			result[i] = treeTraversals{ID: i, Traversals: make(map[string][]int)}
			for _, o := range orders {
				result[i].Traversals[o] = traverse(tree, o)
			}
		}
		return printJSON(out, result)
	}

	for i, tree := range trees {
		fmt.Fprintf(out, "tree %d:\n", i)
		for _, o := range orders {
			fmt.Fprintf(out, "  %-4s: %s\n", o, joinInts(traverse(tree, o)))
		}
	}
	return nil
}
