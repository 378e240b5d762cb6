package domain

// PlatformStats aggregates a filtered set of campaigns for one platform.
// AvgCTR is a percentage. AvgCPC is nil when the set has no clicks.
type PlatformStats struct {
	Platform         Platform `json:"platform"`
	CampaignCount    int      `json:"campaign_count"`
	TotalImpressions int64    `json:"total_impressions"`
	TotalClicks      int64    `json:"total_clicks"`
	TotalSpend       float64  `json:"total_spend"`
	AvgCTR           float64  `json:"avg_ctr"`
	AvgCPC           *float64 `json:"avg_cpc"`
	CTRStd           float64  `json:"ctr_std"`
	LowConfidence    bool     `json:"low_confidence"`
}

// Summary is the cross-platform view of the same filtered set.
type Summary struct {
	CampaignCount int
	AvgCTR        float64
	AvgCPC        *float64
	Platforms     int
}
