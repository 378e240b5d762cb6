// Package memindex is an exact in-process vector index. The role catalog is
// a few thousand entries at most, so a linear scan answers well within the
// search timeout.
package memindex

import (
	"context"
	"sort"
	"sync"

	"recruitads/internal/core/port"
	"recruitads/internal/engine/embedding"
)

type Index struct {
	mu      sync.RWMutex
	vectors map[string][]float32
}

func New() *Index {
	return &Index{vectors: make(map[string][]float32)}
}

func (x *Index) Upsert(_ context.Context, id string, vector []float32) error {
	v := append([]float32(nil), vector...)
	x.mu.Lock()
	x.vectors[id] = v
	x.mu.Unlock()
	return nil
}

func (x *Index) Search(ctx context.Context, vector []float32, k int) ([]port.Neighbor, error) {
	if k <= 0 {
		return nil, nil
	}
	x.mu.RLock()
	out := make([]port.Neighbor, 0, len(x.vectors))
	for id, v := range x.vectors {
		out = append(out, port.Neighbor{ID: id, Score: embedding.Cosine(vector, v)})
	}
	x.mu.RUnlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

func (x *Index) Reset(context.Context) error {
	x.mu.Lock()
	x.vectors = make(map[string][]float32)
	x.mu.Unlock()
	return nil
}

func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.vectors)
}
