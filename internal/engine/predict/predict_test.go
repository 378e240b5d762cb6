package predict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitads/internal/core/domain"
)

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestPredictor(cfg Config) *Predictor {
	p := New(cfg)
	p.now = func() time.Time { return now }
	return p
}

func campaign(role string, p domain.Platform, spend float64, imp, clicks int64, ended time.Time) domain.HistoricalCampaign {
	return domain.HistoricalCampaign{Role: role, Platform: p, Spend: spend, Impressions: imp, Clicks: clicks, EndDate: ended}
}

func TestWeightedAverage(t *testing.T) {
	p := newTestPredictor(Config{Weights: Weights{Role: 1}, MinSimilarity: 0.35})
	got := p.Predict(Input{
		Platform:   domain.PlatformFacebook,
		Budget:     1000,
		Similarity: map[string]float64{"sjuksköterska": 1, "undersköterska": 0.5},
		Rows: []domain.HistoricalCampaign{
			campaign("Sjuksköterska", domain.PlatformFacebook, 1000, 10000, 300, now),
			campaign("Undersköterska", domain.PlatformFacebook, 1000, 10000, 100, now),
			campaign("Sjuksköterska", domain.PlatformLinkedIn, 1000, 10000, 10, now),
			campaign("Säljare", domain.PlatformFacebook, 1000, 10000, 900, now),
		},
	})

	assert.Equal(t, 2, got.SampleSize)
	assert.False(t, got.Degraded)
	assert.InDelta(t, (1*3.0+0.5*1.0)/1.5, got.CTR, 1e-9)
	require.NotNil(t, got.CPC)
	assert.InDelta(t, (1*(1000.0/300)+0.5*10)/1.5, *got.CPC, 1e-9)
	assert.Equal(t, domain.ConfidenceLow, got.Confidence)
}

func TestRecencyDecays(t *testing.T) {
	p := newTestPredictor(DefaultConfig())
	fresh := p.recency(campaign("a", "", 1, 1, 1, now), now)
	halfLife := p.recency(campaign("a", "", 1, 1, 1, now.Add(-180*24*time.Hour)), now)
	old := p.recency(campaign("a", "", 1, 1, 1, now.Add(-720*24*time.Hour)), now)
	assert.Equal(t, 1.0, fresh)
	assert.InDelta(t, 0.5, halfLife, 1e-9)
	assert.Less(t, old, halfLife)
	assert.Equal(t, 0.5, p.recency(domain.HistoricalCampaign{}, now))
}

func TestRecentCampaignsDominate(t *testing.T) {
	p := newTestPredictor(Config{Weights: Weights{Recency: 1}, HalfLife: 30 * 24 * time.Hour})
	got := p.Predict(Input{
		Platform:   domain.PlatformTikTok,
		Similarity: map[string]float64{"kock": 1},
		Rows: []domain.HistoricalCampaign{
			campaign("Kock", domain.PlatformTikTok, 100, 1000, 50, now),
			campaign("Kock", domain.PlatformTikTok, 100, 1000, 10, now.AddDate(-2, 0, 0)),
		},
	})
	assert.Greater(t, got.CTR, 4.9)
}

func TestBudgetSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, budgetSimilarity(500, 500))
	assert.Equal(t, 0.5, budgetSimilarity(500, 1000))
	assert.Equal(t, 0.5, budgetSimilarity(1000, 500))
	assert.Equal(t, 0.0, budgetSimilarity(0, 500))
}

func TestConfidenceFromSampleSize(t *testing.T) {
	p := newTestPredictor(DefaultConfig())
	build := func(n int) []domain.HistoricalCampaign {
		rows := make([]domain.HistoricalCampaign, n)
		for i := range rows {
			rows[i] = campaign("Kock", domain.PlatformFacebook, 100, 1000, 10, now)
		}
		return rows
	}
	sim := map[string]float64{"kock": 1}
	for n, want := range map[int]domain.Confidence{
		4:  domain.ConfidenceLow,
		5:  domain.ConfidenceMedium,
		10: domain.ConfidenceMedium,
		11: domain.ConfidenceHigh,
	} {
		got := p.Predict(Input{Platform: domain.PlatformFacebook, Budget: 100, Similarity: sim, Rows: build(n)})
		assert.Equal(t, want, got.Confidence, "n=%d", n)
		assert.Equal(t, n, got.SampleSize)
	}
}

func TestDissimilarRolesExcluded(t *testing.T) {
	p := newTestPredictor(DefaultConfig())
	got := p.Predict(Input{
		Platform:   domain.PlatformFacebook,
		Similarity: map[string]float64{"kock": 0.2},
		Rows:       []domain.HistoricalCampaign{campaign("Kock", domain.PlatformFacebook, 100, 1000, 10, now)},
	})
	assert.True(t, got.Degraded)
}

func TestEmptyComparableSetUsesPlatformAverage(t *testing.T) {
	p := newTestPredictor(DefaultConfig())
	got := p.Predict(Input{
		Platform: domain.PlatformLinkedIn,
		Budget:   1500,
		Baseline: []domain.HistoricalCampaign{
			campaign("Säljare", domain.PlatformLinkedIn, 1000, 10000, 100, now),
			campaign("Kock", domain.PlatformLinkedIn, 3000, 10000, 100, now),
			campaign("Kock", domain.PlatformFacebook, 100, 100, 100, now),
		},
	})
	assert.True(t, got.Degraded)
	assert.Equal(t, 0, got.SampleSize)
	assert.Equal(t, domain.ConfidenceLow, got.Confidence)
	assert.InDelta(t, 1.0, got.CTR, 1e-9)
	require.NotNil(t, got.CPC)
	assert.InDelta(t, 20.0, *got.CPC, 1e-9)
}

func TestNoDataAtAll(t *testing.T) {
	got := newTestPredictor(DefaultConfig()).Predict(Input{Platform: domain.PlatformReddit})
	assert.True(t, got.Degraded)
	assert.Equal(t, 0.0, got.CTR)
	assert.Nil(t, got.CPC)
}
