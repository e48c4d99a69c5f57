package equivalence

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/espencer199015/Binary-Search-Trees/pkg/ufs"
)

var ErrWorkers = errors.New("worker count must be at least 1")

// GroupByHash sets Hash on every entry using up to workers goroutines and
// returns entry ids keyed by hash. Ids within a bucket are ascending.
func GroupByHash(ctx context.Context, entries []*Entry, workers int, log logrus.FieldLogger) (map[int][]int, error) {
	if workers < 1 {
		return nil, ErrWorkers
	}

	hash2ID := make(map[int][]int)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry.Hash = ComputeHash(entry)
			mu.Lock()
			hash2ID[entry.Hash] = append(hash2ID[entry.Hash], entry.ID)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, ids := range hash2ID {
		sort.Ints(ids)
	}
	log.WithFields(logrus.Fields{
		"trees":   len(entries),
		"buckets": len(hash2ID),
		"workers": workers,
	}).Debug("hashed trees")
	return hash2ID, nil
}

// Group compares every pair of entries sharing a hash bucket, using up to
// workers goroutines, and returns the ids of each class of equivalent trees
// with more than one member. Classes are ordered by their smallest id.
func Group(ctx context.Context, entries []*Entry, buckets map[int][]int, workers int, log logrus.FieldLogger) ([][]int, error) {
	if workers < 1 {
		return nil, ErrWorkers
	}

	uf := ufs.New(len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	comparisons := 0
	for _, ids := range buckets {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				id1, id2 := ids[i], ids[j]
				comparisons++
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					if Compare(entries[id1], entries[id2]) {
						uf.Union(id1, id2)
					}
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	groups := uf.Groups()
	log.WithFields(logrus.Fields{
		"comparisons": comparisons,
		"groups":      len(groups),
		"workers":     workers,
	}).Debug("compared trees")
	return groups, nil
}
