package equivalence

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var trees = [][]int{
	{8, 3, 10, 1, 6, 14, 4, 7, 13},
	{5, 2, 9},
	{1, 3, 4, 6, 7, 8, 10, 13, 14},
	{9, 5, 2},
	{2, 5, 9, 9, 5},
	{100},
}

func TestComputeHash(t *testing.T) {
	entries := NewEntries(trees, false)

	assert.Equal(t, ComputeHash(entries[0]), ComputeHash(entries[2]))
	assert.Equal(t, ComputeHash(entries[1]), ComputeHash(entries[3]))
	assert.Equal(t, ComputeHash(entries[1]), ComputeHash(entries[4]))

	// hash = 1; n = 102; (1*102 + 102) % 1000 = 204
	assert.Equal(t, 204, ComputeHash(entries[5]))

	empty := NewEntries([][]int{{}}, false)
	assert.Equal(t, 1, ComputeHash(empty[0]))

	negative := NewEntries([][]int{{-50, -7}}, false)
	h := ComputeHash(negative[0])
	assert.GreaterOrEqual(t, h, 0)
	assert.Less(t, h, 1000)
}

func TestCompare(t *testing.T) {
	entries := NewEntries(trees, true)
	for _, e := range entries {
		e.Hash = ComputeHash(e)
	}

	assert.True(t, Compare(entries[0], entries[2]))
	assert.True(t, Compare(entries[1], entries[3]))
	assert.False(t, Compare(entries[0], entries[1]))

	// Same hash, different values.
	forged := NewEntries([][]int{{1, 2}, {1, 3}}, false)
	forged[0].Hash, forged[1].Hash = 7, 7
	assert.False(t, Compare(forged[0], forged[1]))
}

func TestGroupByHashAndGroup(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		entries := NewEntries(trees, false)

		buckets, err := GroupByHash(context.Background(), entries, workers, quietLogger())
		require.NoError(t, err)

		assert.Equal(t, []int{0, 2}, buckets[entries[0].Hash])
		assert.Equal(t, []int{1, 3, 4}, buckets[entries[1].Hash])
		total := 0
		for _, ids := range buckets {
			total += len(ids)
		}
		assert.Equal(t, len(trees), total)

		groups, err := Group(context.Background(), entries, buckets, workers, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 2}, {1, 3, 4}}, groups)
	}
}

func TestGroupRejectsBadWorkers(t *testing.T) {
	entries := NewEntries(trees, false)

	_, err := GroupByHash(context.Background(), entries, 0, quietLogger())
	assert.ErrorIs(t, err, ErrWorkers)

	_, err = Group(context.Background(), entries, nil, 0, quietLogger())
	assert.ErrorIs(t, err, ErrWorkers)
}

func TestGroupByHashCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GroupByHash(ctx, NewEntries(trees, false), 2, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
