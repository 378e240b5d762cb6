package aggregate

import (
	"context"
	"fmt"
	"math"
	"sort"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

// MinSample is the smallest per-platform group treated as statistically
// meaningful. Smaller groups are flagged, not dropped.
const MinSample = 3

// Filter keeps admissible campaigns matching role, industry and platform.
// Empty criteria match everything; role and industry are compared by
// domain.RoleKey.
func Filter(rows []domain.HistoricalCampaign, role, industry string, platform domain.Platform) []domain.HistoricalCampaign {
	role = domain.RoleKey(role)
	industry = domain.RoleKey(industry)
	out := make([]domain.HistoricalCampaign, 0, len(rows))
	for _, c := range rows {
		if !c.Admissible() {
			continue
		}
		if role != "" && domain.RoleKey(c.Role) != role {
			continue
		}
		if industry != "" && domain.RoleKey(c.Industry) != industry {
			continue
		}
		if platform != "" && c.Platform != platform {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ByPlatform aggregates rows per platform. Inadmissible rows are skipped.
func ByPlatform(rows []domain.HistoricalCampaign) map[domain.Platform]domain.PlatformStats {
	groups := make(map[domain.Platform][]domain.HistoricalCampaign)
	for _, c := range rows {
		if c.Admissible() {
			groups[c.Platform] = append(groups[c.Platform], c)
		}
	}
	out := make(map[domain.Platform]domain.PlatformStats, len(groups))
	for p, g := range groups {
		out[p] = stats(p, g)
	}
	return out
}

// Sorted returns the stats ordered by campaign count, then platform name.
func Sorted(m map[domain.Platform]domain.PlatformStats) []domain.PlatformStats {
	out := make([]domain.PlatformStats, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CampaignCount != out[j].CampaignCount {
			return out[i].CampaignCount > out[j].CampaignCount
		}
		return out[i].Platform < out[j].Platform
	})
	return out
}

// Summarize aggregates rows across platforms.
func Summarize(rows []domain.HistoricalCampaign) domain.Summary {
	var (
		n           int
		imp, clicks int64
		spend       float64
	)
	platforms := make(map[domain.Platform]struct{})
	for _, c := range rows {
		if !c.Admissible() {
			continue
		}
		n++
		imp += c.Impressions
		clicks += c.Clicks
		spend += c.Spend
		platforms[c.Platform] = struct{}{}
	}
	return domain.Summary{
		CampaignCount: n,
		AvgCTR:        ctr(clicks, imp),
		AvgCPC:        cpc(spend, clicks),
		Platforms:     len(platforms),
	}
}

func stats(p domain.Platform, rows []domain.HistoricalCampaign) domain.PlatformStats {
	s := domain.PlatformStats{Platform: p, CampaignCount: len(rows)}
	ctrs := make([]float64, 0, len(rows))
	for _, c := range rows {
		s.TotalImpressions += c.Impressions
		s.TotalClicks += c.Clicks
		s.TotalSpend += c.Spend
		ctrs = append(ctrs, c.CTR())
	}
	s.AvgCTR = ctr(s.TotalClicks, s.TotalImpressions)
	s.AvgCPC = cpc(s.TotalSpend, s.TotalClicks)
	s.CTRStd = StdDev(ctrs)
	s.LowConfidence = s.CampaignCount < MinSample
	return s
}

func ctr(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

func cpc(spend float64, clicks int64) *float64 {
	if clicks == 0 {
		return nil
	}
	v := spend / float64(clicks)
	return &v
}

// StdDev is the sample standard deviation, 0 for fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// Aggregator fetches campaigns from a source and aggregates them.
type Aggregator struct {
	source port.CampaignSource
}

func New(source port.CampaignSource) *Aggregator {
	return &Aggregator{source: source}
}

// Aggregate returns per-platform statistics for role with optional
// industry and platform filters. An empty role aggregates everything.
func (a *Aggregator) Aggregate(ctx context.Context, role, industry string, platform domain.Platform) (map[domain.Platform]domain.PlatformStats, error) {
	filter := port.CampaignFilter{Industry: industry, Platform: platform}
	if role != "" {
		filter.Roles = []string{role}
	}
	rows, err := a.source.Campaigns(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	return ByPlatform(Filter(rows, role, industry, platform)), nil
}
