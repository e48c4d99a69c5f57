package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/espencer199015/Binary-Search-Trees/pkg/equivalence"
)

func newEquivCmd(cfg *config) *cobra.Command {
	var hashWorkers, compWorkers int

	cmd := &cobra.Command{
		Use:   "equiv",
		Short: "Group trees holding the same values",
		Long: `The equiv command hashes every tree's in-order traversal, prints the hash
buckets holding more than one tree, then compares trees within each bucket
and prints the groups of equivalent trees.

Example:
  bstctl equiv -i trees.txt --hash-workers 4 --comp-workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEquiv(cmd, cfg, hashWorkers, compWorkers)
		},
	}
	cmd.Flags().IntVar(&hashWorkers, "hash-workers", 1, "Number of goroutines for hashing trees")
	cmd.Flags().IntVar(&compWorkers, "comp-workers", 1, "Number of goroutines for tree comparisons")
	return cmd
}

func runEquiv(cmd *cobra.Command, cfg *config, hashWorkers, compWorkers int) error {
	values, err := cfg.readValues(cmd)
	if err != nil {
		return err
	}
	entries := equivalence.NewEntries(values, cfg.recursive)
	log := cfg.log.WithField("scope", "EQUIV")
	ctx := cmd.Context()

	startHash := time.Now()
	buckets, err := equivalence.GroupByHash(ctx, entries, hashWorkers, log)
	if err != nil {
		return fmt.Errorf("failed to hash trees: %w", err)
	}
	hashTime := time.Since(startHash).Seconds()

	startCompare := time.Now()
	groups, err := equivalence.Group(ctx, entries, buckets, compWorkers, log)
	if err != nil {
		return fmt.Errorf("failed to compare trees: %w", err)
	}
	compareTreeTime := time.Since(startCompare).Seconds()

	hashes := make([]int, 0, len(buckets))
	for hash, ids := range buckets {
		if len(ids) > 1 {
			hashes = append(hashes, hash)
		}
	}
	sort.Ints(hashes)

	out := cmd.OutOrStdout()
	if cfg.jsonOut {
		shared := make(map[string][]int, len(hashes))
		for _, hash := range hashes {
			shared[fmt.Sprint(hash)] = buckets[hash]
		}
		if groups == nil {
			groups = [][]int{}
		}
		return printJSON(out, map[string]interface{}{
			"hashTime":        hashTime,
			"hashes":          shared,
			"compareTreeTime": compareTreeTime,
			"groups":          groups,
		})
	}

	fmt.Fprintf(out, "hashTime: %.8f\n", hashTime)
	for _, hash := range hashes {
		fmt.Fprintf(out, "%d: %s\n", hash, joinInts(buckets[hash]))
	}
	fmt.Fprintf(out, "compareTreeTime: %.8f\n", compareTreeTime)
	for i, group := range groups {
		fmt.Fprintf(out, "group %d: %s\n", i, joinInts(group))
	}
	return nil
}
