package budget

import (
	"sort"

	"recruitads/internal/core/domain"
)

const (
	// ReferenceDays is the period historical spend is assumed to cover.
	ReferenceDays = 30
	// MinSuccessful is the smallest successful subset the percentile path
	// accepts.
	MinSuccessful = 3
)

// Heuristic amounts per reference period and their success probabilities,
// used when history is too thin for percentiles.
var (
	heuristicTotals = [3]float64{1000, 1500, 2500}
	heuristicProbs  = [3]float64{0.60, 0.75, 0.90}
	percentiles     = [3]float64{25, 50, 75}
	tierNames       = [3]domain.TierName{domain.TierMinimum, domain.TierStandard, domain.TierPremium}
)

// Tiers derives minimum, standard and premium budgets for a campaign of
// days days from rows. A campaign is successful when its CTR is at or above
// the median CTR of rows. Totals scale linearly with days.
func Tiers(rows []domain.HistoricalCampaign, days int) domain.BudgetTiers {
	if days < 1 {
		days = 1
	}
	admitted := make([]domain.HistoricalCampaign, 0, len(rows))
	for _, c := range rows {
		if c.Admissible() {
			admitted = append(admitted, c)
		}
	}

	successful := Successful(admitted)
	avgCPC := averageCPC(admitted)
	scale := float64(days) / ReferenceDays

	var refs, probs [3]float64
	method := domain.BudgetPercentile
	if len(successful) < MinSuccessful {
		method = domain.BudgetHeuristic
		refs, probs = heuristicTotals, heuristicProbs
	} else {
		spends := make([]float64, len(successful))
		for i, c := range successful {
			spends[i] = c.Spend
		}
		sort.Float64s(spends)
		for i, p := range percentiles {
			refs[i] = Percentile(spends, p)
			probs[i] = fractionAtMost(spends, refs[i])
		}
	}

	var tiers [3]domain.BudgetTier
	for i := range tiers {
		total := refs[i] * scale
		tiers[i] = domain.BudgetTier{
			Name:               tierNames[i],
			Total:              total,
			Daily:              total / float64(days),
			ExpectedClicks:     clicksFor(total, avgCPC),
			SuccessProbability: probs[i],
		}
	}
	return domain.BudgetTiers{
		Minimum:    tiers[0],
		Standard:   tiers[1],
		Premium:    tiers[2],
		Method:     method,
		SampleSize: len(admitted),
	}
}

// Successful returns the campaigns whose CTR is at or above the median.
func Successful(rows []domain.HistoricalCampaign) []domain.HistoricalCampaign {
	if len(rows) == 0 {
		return nil
	}
	ctrs := make([]float64, len(rows))
	for i, c := range rows {
		ctrs[i] = c.CTR()
	}
	sort.Float64s(ctrs)
	median := Percentile(ctrs, 50)

	out := make([]domain.HistoricalCampaign, 0, len(rows))
	for _, c := range rows {
		if c.CTR() >= median {
			out = append(out, c)
		}
	}
	return out
}

// Percentile interpolates linearly between the closest ranks of sorted.
func Percentile(sorted []float64, p float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func fractionAtMost(sorted []float64, limit float64) float64 {
	n := sort.Search(len(sorted), func(i int) bool { return sorted[i] > limit })
	return float64(n) / float64(len(sorted))
}

func averageCPC(rows []domain.HistoricalCampaign) *float64 {
	var spend float64
	var clicks int64
	for _, c := range rows {
		spend += c.Spend
		clicks += c.Clicks
	}
	if clicks == 0 {
		return nil
	}
	v := spend / float64(clicks)
	return &v
}

func clicksFor(total float64, cpc *float64) *float64 {
	if cpc == nil || *cpc <= 0 {
		return nil
	}
	v := total / *cpc
	return &v
}
