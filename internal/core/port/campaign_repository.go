package port

import (
	"context"

	"recruitads/internal/core/domain"
)

// CampaignFilter narrows the historical dataset. Empty fields do not
// filter. Roles and Industry are compared by domain.RoleKey.
type CampaignFilter struct {
	Roles    []string
	Industry string
	Platform domain.Platform
}

// CampaignSource is the historical campaign data source. It is an outbound
// port; implementations must be safe for concurrent use.
type CampaignSource interface {
	// Campaigns returns every campaign matching the filter.
	Campaigns(ctx context.Context, filter CampaignFilter) ([]domain.HistoricalCampaign, error)
	// Roles returns the canonical roles present in the dataset with their
	// industries and campaign counts.
	Roles(ctx context.Context) ([]domain.RoleSummary, error)
}

// CampaignWriter stores imported campaigns. Existing ids are overwritten.
type CampaignWriter interface {
	SaveCampaigns(ctx context.Context, campaigns []domain.HistoricalCampaign) (int64, error)
}
