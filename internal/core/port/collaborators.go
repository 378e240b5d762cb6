package port

import (
	"context"
	"errors"

	"recruitads/internal/core/domain"
)

// ErrEmbeddingUnavailable means the embedding provider could not be reached.
// It is not retried within a request.
var ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")

// Embedder maps text to a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Neighbor is one approximate-nearest-neighbour hit.
type Neighbor struct {
	ID    string
	Score float64
}

// VectorIndex is an approximate-nearest-neighbour index over unit vectors.
// Search returns at most k neighbours ordered by descending cosine score.
type VectorIndex interface {
	Upsert(ctx context.Context, id string, vector []float32) error
	Search(ctx context.Context, vector []float32, k int) ([]Neighbor, error)
	Reset(ctx context.Context) error
}

// ExplainInput carries the statistics an explanation is generated from.
type ExplainInput struct {
	Role       string
	Industry   string
	Platform   domain.Platform
	CTR        float64
	CPC        *float64
	SampleSize int
	Confidence domain.Confidence
}

// Explainer turns channel statistics into one natural-language sentence.
type Explainer interface {
	Explain(ctx context.Context, in ExplainInput) (string, error)
}

// IndustryClassifier labels a role with an industry when rules cannot.
type IndustryClassifier interface {
	Classify(ctx context.Context, role, company string) (string, error)
}

// VectorCache persists embeddings across processes.
type VectorCache interface {
	GetVector(ctx context.Context, key string) ([]float32, bool, error)
	SetVector(ctx context.Context, key string, vector []float32) error
	Flush(ctx context.Context) error
}

// LabelCache persists classifier results across processes.
type LabelCache interface {
	GetLabel(ctx context.Context, key string) (string, bool, error)
	SetLabel(ctx context.Context, key, label string) error
}
