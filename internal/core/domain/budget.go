package domain

import "strings"

// TierName is one of the three predefined spend levels.
type TierName string

const (
	TierMinimum  TierName = "minimum"
	TierStandard TierName = "standard"
	TierPremium  TierName = "premium"
)

// ParseTier validates a budget tier name. An empty name selects standard.
func ParseTier(s string) (TierName, bool) {
	switch TierName(strings.ToLower(strings.TrimSpace(s))) {
	case "", TierStandard:
		return TierStandard, true
	case TierMinimum:
		return TierMinimum, true
	case TierPremium:
		return TierPremium, true
	default:
		return "", false
	}
}

// BudgetMethod records how the tiers were derived.
type BudgetMethod string

const (
	BudgetPercentile BudgetMethod = "percentile"
	BudgetHeuristic  BudgetMethod = "heuristic"
)

// BudgetTier is a recommended spend level for the whole campaign.
type BudgetTier struct {
	Name               TierName `json:"-"`
	Total              float64  `json:"total"`
	Daily              float64  `json:"daily"`
	ExpectedClicks     *float64 `json:"expected_clicks"`
	SuccessProbability float64  `json:"success_probability"`
}

// BudgetTiers holds the three levels and the path that produced them.
type BudgetTiers struct {
	Minimum    BudgetTier
	Standard   BudgetTier
	Premium    BudgetTier
	Method     BudgetMethod
	SampleSize int
}

// Get returns the tier with the given name.
func (t BudgetTiers) Get(name TierName) BudgetTier {
	switch name {
	case TierMinimum:
		return t.Minimum
	case TierPremium:
		return t.Premium
	default:
		return t.Standard
	}
}
