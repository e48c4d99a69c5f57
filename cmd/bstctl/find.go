package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/espencer199015/Binary-Search-Trees/pkg/bst"
)

type findResult struct {
	Tree  int  `json:"tree"`
	Value int  `json:"value"`
	Found bool `json:"found"`
	Left  *int `json:"left,omitempty"`
	Right *int `json:"right,omitempty"`
}

func newFindCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "find <value>...",
		Short: "Search every tree for values",
		Long: `The find command looks up each value in every tree and reports whether it
is present, along with the found node's children.

Example:
  bstctl find -i trees.txt 6 99`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, len(args))
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				values[i] = v
			}
			return runFind(cmd, cfg, values)
		},
	}
}

func lookup(tree *bst.BinarySearchTree[int], value int, recursive bool) *bst.Node[int] {
	if recursive {
		return tree.FindRecursively(value)
	}
	return tree.Find(value)
}

func runFind(cmd *cobra.Command, cfg *config, values []int) error {
	trees, err := cfg.loadTrees(cmd)
	if err != nil {
		return err
	}

	var results []findResult
	for i, tree := range trees {
		for _, v := range values {
			r := findResult{Tree: i, Value: v}
			if node := lookup(tree, v, cfg.recursive); node != nil {
				r.Found = true
				if left := node.Left(); left != nil {
					lv := left.Value()
					r.Left = &lv
				}
				if right := node.Right(); right != nil {
					rv := right.Value()
					r.Right = &rv
				}
			}
			results = append(results, r)
		}
	}

	out := cmd.OutOrStdout()
	if cfg.jsonOut {
		return printJSON(out, results)
	}
	for _, r := range results {
		if !r.Found {
			fmt.Fprintf(out, "tree %d: %d not found\n", r.Tree, r.Value)
			continue
		}
		fmt.Fprintf(out, "tree %d: %d found (left: %s, right: %s)\n",
			r.Tree, r.Value, optionalInt(r.Left), optionalInt(r.Right))
	}
	return nil
}

func optionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
