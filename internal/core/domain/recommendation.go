package domain

// Prediction is the expected per-platform performance of a campaign.
type Prediction struct {
	Platform   Platform
	CTR        float64
	CPC        *float64
	Confidence Confidence
	SampleSize int
	// Degraded is set when no comparable campaigns existed and the estimate
	// is the platform-wide average.
	Degraded bool
}

// ChannelRecommendation is one ranked channel in a recommendation.
type ChannelRecommendation struct {
	Platform            Platform   `json:"platform"`
	PredictedCTR        float64    `json:"predicted_ctr"`
	PredictedCPC        *float64   `json:"predicted_cpc"`
	BudgetShare         float64    `json:"budget_share"`
	RecommendedBudget   float64    `json:"recommended_budget"`
	ExpectedClicks      *float64   `json:"expected_clicks"`
	Confidence          Confidence `json:"confidence"`
	HistoricalCampaigns int        `json:"historical_campaigns"`
	Insights            []string   `json:"insights"`
	Score               float64    `json:"performance_score"`
}

// RoleMatchView is the wire shape of a RoleMatch.
type RoleMatchView struct {
	MatchedRole     string     `json:"matched_role"`
	SimilarityScore float64    `json:"similarity_score"`
	Confidence      Confidence `json:"confidence"`
	Stage           MatchStage `json:"stage"`
}

// BudgetRecommendations is the wire shape of BudgetTiers.
type BudgetRecommendations struct {
	Minimum  BudgetTier `json:"minimum"`
	Standard BudgetTier `json:"standard"`
	Premium  BudgetTier `json:"premium"`
}

// DataScope tells which slice of history backed the recommendation.
type DataScope string

const (
	ScopeRoleIndustry DataScope = "role_industry"
	ScopeRole         DataScope = "role"
	ScopeGlobal       DataScope = "global"
)

// RecommendationResponse is the complete answer for a request.
type RecommendationResponse struct {
	RequestID              string                  `json:"request_id"`
	RoleMatch              RoleMatchView           `json:"role_match"`
	Industry               string                  `json:"industry"`
	DataScope              DataScope               `json:"data_scope"`
	BudgetMethod           BudgetMethod            `json:"budget_method"`
	SelectedTier           TierName                `json:"selected_tier"`
	BudgetRecommendations  BudgetRecommendations   `json:"budget_recommendations"`
	ChannelRecommendations []ChannelRecommendation `json:"channel_recommendations"`
	OptimizationTips       []string                `json:"optimization_tips"`
}
