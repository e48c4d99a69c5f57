package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/espencer199015/Binary-Search-Trees/pkg/bst"
)

func newRenderCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Draw each tree",
		Long: `The render command draws every tree with its left (L) and right (R)
children.

Example:
  echo "8 3 10 1 6" | bstctl render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg)
		},
	}
}

// toTreeNode converts a subtree into pterm's printable form.
func toTreeNode(node *bst.Node[int], label string) pterm.TreeNode {
	text := fmt.Sprintf("%s%d", label, node.Value())
	var children []pterm.TreeNode
	if node.Left() != nil {
		children = append(children, toTreeNode(node.Left(), "L: "))
	}
	if node.Right() != nil {
		children = append(children, toTreeNode(node.Right(), "R: "))
	}
	return pterm.TreeNode{Text: text, Children: children}
}

func runRender(cmd *cobra.Command, cfg *config) error {
	trees, err := cfg.loadTrees(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, tree := range trees {
		fmt.Fprintf(out, "tree %d:\n", i)
		if tree.Root() == nil {
			fmt.Fprintln(out, "(empty)")
			continue
		}
		rendered, err := pterm.DefaultTree.
			WithRoot(pterm.TreeNode{Children: []pterm.TreeNode{toTreeNode(tree.Root(), "")}}).
			Srender()
		if err != nil {
			return fmt.Errorf("failed to render tree %d: %w", i, err)
		}
		fmt.Fprint(out, rendered)
	}
	return nil
}
