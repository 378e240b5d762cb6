package port

import (
	"context"

	"recruitads/internal/core/domain"
)

// RecommendUseCase defines the business operations exposed by the engine.
// It is the primary port into the application domain.
type RecommendUseCase interface {
	// Recommend validates the request and returns a ranked, explained
	// recommendation. Only *domain.ValidationError and
	// domain.ErrDataUnavailable are returned as errors; every other failure
	// degrades to a lower-confidence answer.
	Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResponse, error)

	// GetStats aggregates history for a role with optional industry and
	// platform filters.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// Roles lists the canonical role catalog.
	Roles(ctx context.Context) ([]domain.RoleSummary, error)

	// Industries lists industry labels observed in history.
	Industries(ctx context.Context) ([]string, error)

	// Reindex reloads the role catalog, invalidates cached embeddings and
	// rebuilds the nearest-neighbour index.
	Reindex(ctx context.Context) error
}

// StatsReq selects the slice of history to aggregate.
type StatsReq struct {
	Role     string
	Industry string
	Platform domain.Platform
}

// StatsResp contains per-platform aggregates for a StatsReq.
type StatsResp struct {
	Role      string                 `json:"role"`
	Industry  string                 `json:"industry,omitempty"`
	Platforms []domain.PlatformStats `json:"platforms"`
}
