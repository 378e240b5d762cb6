package memindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOrdersByCosine(t *testing.T) {
	ctx := context.Background()
	x := New()
	require.NoError(t, x.Upsert(ctx, "a", []float32{1, 0}))
	require.NoError(t, x.Upsert(ctx, "b", []float32{0.6, 0.8}))
	require.NoError(t, x.Upsert(ctx, "c", []float32{0, 1}))

	hits, err := x.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)
	assert.Equal(t, "b", hits[1].ID)
	assert.InDelta(t, 0.6, hits[1].Score, 1e-6)
}

func TestUpsertReplacesAndResetClears(t *testing.T) {
	ctx := context.Background()
	x := New()
	require.NoError(t, x.Upsert(ctx, "a", []float32{1, 0}))
	require.NoError(t, x.Upsert(ctx, "a", []float32{0, 1}))
	assert.Equal(t, 1, x.Len())

	hits, err := x.Search(ctx, []float32{0, 1}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)

	require.NoError(t, x.Reset(ctx))
	hits, err = x.Search(ctx, []float32{0, 1}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Search(ctx, []float32{1}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
