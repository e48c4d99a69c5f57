package ufs

import (
	"sync"
)

// UnionFind tracks disjoint sets of tree ids. It is safe for concurrent use.
type UnionFind struct {
	mu     sync.Mutex
	parent []int
	rank   []int
}

func New(size int) *UnionFind {
	parent := make([]int, size)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]int, size),
	}
}

// Find returns the representative of the set containing x.
func (uf *UnionFind) Find(x int) int {
	uf.mu.Lock()
	defer uf.mu.Unlock()
	return uf.find(x)
}

func (uf *UnionFind) find(x int) int {
	if uf.parent[x] != x {
		uf.parent[x] = uf.find(uf.parent[x]) // Path compression
	}
	return uf.parent[x]
}

// Union merges the sets containing x and y.
func (uf *UnionFind) Union(x, y int) {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	rootX := uf.find(x)
	rootY := uf.find(y)
	if rootX == rootY {
		return
	}
	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
}

// Groups returns every set with more than one member. Members are ascending
// and groups are ordered by their smallest member.
func (uf *UnionFind) Groups() [][]int {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	byRoot := make(map[int][]int)
	var roots []int
	for i := range uf.parent {
		root := uf.find(i)
		if _, ok := byRoot[root]; !ok {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], i)
	}

	var groups [][]int
	for _, root := range roots {
		if members := byRoot[root]; len(members) > 1 {
			groups = append(groups, members)
		}
	}
	return groups
}
