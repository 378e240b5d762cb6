package domain

import "strings"

// RoleKey is the identity of a role or industry string: lower-cased, with
// surrounding whitespace trimmed and inner runs collapsed to one space.
// Every lookup that joins on a role uses it.
func RoleKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Confidence is a coarse three level summary of statistical reliability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Similarity bands used to label role matches.
const (
	HighSimilarity   = 0.8
	MediumSimilarity = 0.5
)

// ConfidenceFromScore labels a similarity score in [0,1].
func ConfidenceFromScore(score float64) Confidence {
	switch {
	case score >= HighSimilarity:
		return ConfidenceHigh
	case score >= MediumSimilarity:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ConfidenceFromSample labels the number of campaigns behind an estimate:
// more than ten is high, five to ten is medium, anything else low.
func ConfidenceFromSample(n int) Confidence {
	switch {
	case n > 10:
		return ConfidenceHigh
	case n >= 5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// MatchStage names the matcher strategy that produced a RoleMatch.
type MatchStage string

const (
	StageExact     MatchStage = "exact"
	StageStem      MatchStage = "stem"
	StageIndustry  MatchStage = "industry"
	StageEmbedding MatchStage = "embedding"
	StageFallback  MatchStage = "fallback"
)

// ScoredRole is a candidate canonical role with its similarity to a query.
type ScoredRole struct {
	Role    string
	Score   float64
	Samples int
}

// RoleMatch is the outcome of resolving a free-text role. Role is empty for
// the global fallback, in which case recommendations use all campaigns.
type RoleMatch struct {
	Query        string
	Role         string
	Score        float64
	Confidence   Confidence
	Stage        MatchStage
	Alternatives []ScoredRole
}

// IsFallback reports whether no canonical role could be matched.
func (m RoleMatch) IsFallback() bool {
	return m.Stage == StageFallback || m.Role == ""
}

// RoleSummary describes one canonical role known from historical data.
type RoleSummary struct {
	Role       string   `json:"role"`
	Industries []string `json:"industries"`
	Campaigns  int      `json:"campaigns"`
}
