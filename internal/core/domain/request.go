package domain

import (
	"strings"
	"unicode/utf8"
)

// Campaign duration bounds accepted by the engine, in days.
const (
	MinCampaignDays = 1
	MaxCampaignDays = 365
)

// RecommendationRequest describes the campaign a recruiter wants to run.
// The HTTP layer decodes it from JSON and passes it into the usecase.
type RecommendationRequest struct {
	Role         string `json:"role"`
	Industry     string `json:"industry,omitempty"`
	Company      string `json:"company,omitempty"`
	Location     string `json:"location,omitempty"`
	BudgetTier   string `json:"budget_tier"`
	CampaignDays int    `json:"campaign_days"`
}

// Validate checks the request before any collaborator is invoked and
// returns a *ValidationError naming the violated constraint.
func (r RecommendationRequest) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Role)) < 2 {
		return &ValidationError{Field: "role", Constraint: "must be at least 2 characters"}
	}
	if _, ok := ParseTier(r.BudgetTier); !ok {
		return &ValidationError{Field: "budget_tier", Constraint: "must be one of minimum, standard, premium"}
	}
	if r.CampaignDays < MinCampaignDays || r.CampaignDays > MaxCampaignDays {
		return &ValidationError{Field: "campaign_days", Constraint: "must be between 1 and 365"}
	}
	return nil
}

// Tier returns the validated tier name.
func (r RecommendationRequest) Tier() TierName {
	t, _ := ParseTier(r.BudgetTier)
	return t
}
