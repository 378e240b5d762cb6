package embedding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/singleflight"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
	"recruitads/internal/metrics"
)

var errZeroVector = errors.New("zero-length embedding")

// Store memoizes role embeddings. Keys are normalized text, values are unit
// vectors, so a dot product between two stored vectors is their cosine.
// Entries are immutable and only dropped by Invalidate.
type Store struct {
	embedder port.Embedder
	remote   port.VectorCache
	log      *slog.Logger
	metrics  *metrics.Metrics

	mu      sync.RWMutex
	vectors map[string][]float32
	group   singleflight.Group
}

// NewStore returns a store backed by embedder. remote may be nil.
func NewStore(embedder port.Embedder, remote port.VectorCache, log *slog.Logger, m *metrics.Metrics) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		embedder: embedder,
		remote:   remote,
		log:      log,
		metrics:  m,
		vectors:  make(map[string][]float32),
	}
}

// Key normalizes text into a cache key with domain.RoleKey.
func Key(text string) string {
	return domain.RoleKey(text)
}

// Embed returns the unit vector for text. Failures of the provider are
// wrapped in port.ErrEmbeddingUnavailable.
func (s *Store) Embed(ctx context.Context, text string) ([]float32, error) {
	key := Key(text)
	if key == "" {
		return nil, fmt.Errorf("%w: empty text", port.ErrEmbeddingUnavailable)
	}

	s.mu.RLock()
	v, ok := s.vectors[key]
	s.mu.RUnlock()
	if ok {
		s.metrics.EmbeddingLookup("hit")
		return v, nil
	}

	res, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.load(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return res.([]float32), nil
}

func (s *Store) load(ctx context.Context, key string) ([]float32, error) {
	if s.remote != nil {
		v, ok, err := s.remote.GetVector(ctx, key)
		if err != nil {
			s.log.Warn("embedding cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		if ok && err == nil {
			if unit, nerr := Normalize(v); nerr == nil {
				s.metrics.EmbeddingLookup("remote")
				s.put(key, unit)
				return unit, nil
			}
		}
	}

	s.metrics.EmbeddingLookup("miss")
	raw, err := s.embedder.Embed(ctx, key)
	if err != nil {
		if errors.Is(err, port.ErrEmbeddingUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", port.ErrEmbeddingUnavailable, err)
	}
	unit, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrEmbeddingUnavailable, err)
	}
	s.put(key, unit)

	if s.remote != nil {
		if err := s.remote.SetVector(ctx, key, unit); err != nil {
			s.log.Warn("embedding cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return unit, nil
}

func (s *Store) put(key string, v []float32) {
	s.mu.Lock()
	s.vectors[key] = v
	s.mu.Unlock()
}

// Invalidate drops every cached embedding, locally and in the remote cache.
func (s *Store) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.vectors = make(map[string][]float32)
	s.mu.Unlock()
	if s.remote == nil {
		return nil
	}
	if err := s.remote.Flush(ctx); err != nil {
		return fmt.Errorf("flush embedding cache: %w", err)
	}
	return nil
}

// Len is the number of locally cached vectors.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// Normalize returns a unit-length copy of v.
func Normalize(v []float32) ([]float32, error) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if len(v) == 0 || sum == 0 {
		return nil, errZeroVector
	}
	n := math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out, nil
}

// Cosine is the dot product of two unit vectors clamped to [0,1]. Vectors of
// different length have similarity 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return math.Max(0, math.Min(1, dot))
}
