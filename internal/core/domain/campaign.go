package domain

import "time"

// HistoricalCampaign is one completed recruitment advertising campaign.
// Spend is stored in local currency (SEK). Industry is empty when unknown.
type HistoricalCampaign struct {
	ID           string
	Name         string
	Role         string
	Industry     string
	Company      string
	Platform     Platform
	Location     string
	Spend        float64
	Impressions  int64
	Clicks       int64
	DurationDays int
	StartDate    time.Time
	EndDate      time.Time
}

// Admissible reports whether the campaign may take part in aggregation.
// Rows with no spend or more clicks than impressions are excluded, never
// corrected.
func (c HistoricalCampaign) Admissible() bool {
	return c.Spend > 0 && c.Impressions >= 0 && c.Clicks >= 0 && c.Clicks <= c.Impressions
}

// CTR returns clicks/impressions as a percentage, or 0 without impressions.
func (c HistoricalCampaign) CTR() float64 {
	if c.Impressions == 0 {
		return 0
	}
	return float64(c.Clicks) / float64(c.Impressions) * 100
}

// CPC returns spend/clicks. ok is false when the campaign has no clicks.
func (c HistoricalCampaign) CPC() (cpc float64, ok bool) {
	if c.Clicks == 0 {
		return 0, false
	}
	return c.Spend / float64(c.Clicks), true
}

// CompletedAt is the reference date used for recency weighting.
func (c HistoricalCampaign) CompletedAt() time.Time {
	if !c.EndDate.IsZero() {
		return c.EndDate
	}
	if !c.StartDate.IsZero() && c.DurationDays > 0 {
		return c.StartDate.AddDate(0, 0, c.DurationDays)
	}
	return c.StartDate
}
