package usecase

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitads/internal/adapter/memindex"
	"recruitads/internal/adapter/ngram"
	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
	"recruitads/internal/core/port/mocks"
	"recruitads/internal/engine/aggregate"
	"recruitads/internal/engine/embedding"
	"recruitads/internal/engine/industry"
	"recruitads/internal/engine/matcher"
	"recruitads/internal/engine/predict"
)

var ended = time.Now().AddDate(0, -2, 0)

func hc(role, ind string, p domain.Platform, spend float64, imp, clicks int64) domain.HistoricalCampaign {
	return domain.HistoricalCampaign{
		ID: role + string(p), Role: role, Industry: ind, Platform: p,
		Spend: spend, Impressions: imp, Clicks: clicks, DurationDays: 30, EndDate: ended,
	}
}

func dataset() []domain.HistoricalCampaign {
	return []domain.HistoricalCampaign{
		hc("Sjuksköterska", "Vård", domain.PlatformFacebook, 1200, 40000, 1000),
		hc("Sjuksköterska", "Vård", domain.PlatformFacebook, 1500, 50000, 1100),
		hc("Sjuksköterska", "Vård", domain.PlatformFacebook, 1800, 45000, 1300),
		hc("Sjuksköterska", "Vård", domain.PlatformFacebook, 2500, 60000, 1500),
		hc("Sjuksköterska", "Vård", domain.PlatformFacebook, 3000, 80000, 1400),
		hc("Sjuksköterska", "Vård", domain.PlatformLinkedIn, 4000, 20000, 150),
		hc("Sjuksköterska", "Vård", domain.PlatformLinkedIn, 3500, 15000, 120),
		hc("Sjuksköterska", "Vård", domain.PlatformLinkedIn, 5000, 30000, 200),
		hc("Undersköterska", "Äldreomsorg", domain.PlatformFacebook, 900, 30000, 600),
		hc("Undersköterska", "Äldreomsorg", domain.PlatformSnapchat, 700, 50000, 400),
		hc("Undersköterska", "Äldreomsorg", domain.PlatformTikTok, 800, 60000, 500),
		hc("Säljare", "Detaljhandel", domain.PlatformFacebook, 1000, 30000, 500),
		hc("Säljare", "Detaljhandel", domain.PlatformTikTok, 1100, 70000, 900),
		hc("Säljare", "Detaljhandel", domain.PlatformSnapchat, 600, 40000, 300),
		hc("Säljare", "Detaljhandel", domain.PlatformReddit, 300, 9000, 40),
		hc("Kock", "Restaurang & Café", domain.PlatformFacebook, 800, 20000, 300),
		hc("Kock", "Restaurang & Café", domain.PlatformTikTok, 600, 30000, 350),
		hc("Kock", "Restaurang & Café", domain.PlatformTikTok, 0, 1000, 10),
	}
}

func roleSummaries(rows []domain.HistoricalCampaign) []domain.RoleSummary {
	idx := map[string]int{}
	var out []domain.RoleSummary
	for _, r := range rows {
		i, ok := idx[r.Role]
		if !ok {
			i = len(out)
			idx[r.Role] = i
			out = append(out, domain.RoleSummary{Role: r.Role})
		}
		out[i].Campaigns++
		out[i].Industries = append(out[i].Industries, r.Industry)
	}
	return out
}

// filteringSource answers CampaignFilter queries from rows.
func filteringSource(t *testing.T, rows []domain.HistoricalCampaign) *mocks.MockCampaignSource {
	src := mocks.NewMockCampaignSource(t)
	src.EXPECT().Campaigns(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, f port.CampaignFilter) ([]domain.HistoricalCampaign, error) {
			var out []domain.HistoricalCampaign
			for _, r := range rows {
				if len(f.Roles) > 0 {
					found := false
					for _, want := range f.Roles {
						found = found || domain.RoleKey(want) == domain.RoleKey(r.Role)
					}
					if !found {
						continue
					}
				}
				out = append(out, r)
			}
			return out, nil
		}).Maybe()
	src.EXPECT().Roles(mock.Anything).Return(roleSummaries(rows), nil).Maybe()
	return src
}

func newTestUseCase(t *testing.T, src port.CampaignSource, explainer port.Explainer) *RecommendUseCase {
	t.Helper()
	return newUseCaseWithCatalog(t, src, explainer, dataset())
}

// newUseCaseWithCatalog builds the role catalog from rows.
func newUseCaseWithCatalog(t *testing.T, src port.CampaignSource, explainer port.Explainer, rows []domain.HistoricalCampaign) *RecommendUseCase {
	t.Helper()
	store := embedding.NewStore(ngram.New(0), nil, nil, nil)
	m := matcher.New(store, memindex.New(), matcher.DefaultConfig(), nil, nil)
	require.NoError(t, m.Rebuild(context.Background(), roleSummaries(rows)))

	return NewRecommendUseCase(Deps{
		Source:     src,
		Matcher:    m,
		Resolver:   industry.NewResolver(nil, nil, nil, 0, nil, nil),
		Predictor:  predict.New(predict.DefaultConfig()),
		Embeddings: store,
		Explainer:  explainer,
	}, DefaultConfig())
}

func request(role, ind string, days int) domain.RecommendationRequest {
	return domain.RecommendationRequest{Role: role, Industry: ind, BudgetTier: "standard", CampaignDays: days}
}

func assertComplete(t *testing.T, resp *domain.RecommendationResponse) {
	t.Helper()
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.ChannelRecommendations)
	assert.LessOrEqual(t, len(resp.OptimizationTips), MaxTips)
	assert.NotEmpty(t, resp.OptimizationTips)

	var share, spend float64
	for _, ch := range resp.ChannelRecommendations {
		assert.NotEmpty(t, ch.Insights, ch.Platform)
		share += ch.BudgetShare
		spend += ch.RecommendedBudget
	}
	assert.InDelta(t, 100, share, 1e-9)
	assert.InDelta(t, resp.BudgetRecommendations.Standard.Total, spend, 1e-6)

	b := resp.BudgetRecommendations
	assert.LessOrEqual(t, b.Minimum.Total, b.Standard.Total)
	assert.LessOrEqual(t, b.Standard.Total, b.Premium.Total)
	assert.LessOrEqual(t, b.Minimum.SuccessProbability, b.Standard.SuccessProbability)
	assert.LessOrEqual(t, b.Standard.SuccessProbability, b.Premium.SuccessProbability)
}

func TestRecommendExactRoleWithIndustry(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)

	resp, err := u.Recommend(context.Background(), request("Sjuksköterska", "Vård", 30))
	require.NoError(t, err)
	assertComplete(t, resp)

	assert.Equal(t, "Sjuksköterska", resp.RoleMatch.MatchedRole)
	assert.Equal(t, 1.0, resp.RoleMatch.SimilarityScore)
	assert.Equal(t, domain.ConfidenceHigh, resp.RoleMatch.Confidence)
	assert.Equal(t, domain.ScopeRoleIndustry, resp.DataScope)
	assert.Equal(t, domain.BudgetPercentile, resp.BudgetMethod)
	assert.Equal(t, "Vård", resp.Industry)

	var platforms []domain.Platform
	for _, ch := range resp.ChannelRecommendations {
		platforms = append(platforms, ch.Platform)
	}
	assert.Contains(t, platforms, domain.PlatformFacebook)

	top := resp.ChannelRecommendations[0]
	assert.Equal(t, domain.PlatformFacebook, top.Platform)
	assert.Equal(t, 70.0, top.BudgetShare)
	assert.Equal(t, 5, top.HistoricalCampaigns)
	require.NotNil(t, top.ExpectedClicks)
	require.NotNil(t, top.PredictedCPC)
	assert.InDelta(t, top.RecommendedBudget / *top.PredictedCPC, *top.ExpectedClicks, 1e-9)
}

func TestRecommendMisspelledRole(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)

	resp, err := u.Recommend(context.Background(), request("Sjuksköterksa", "", 30))
	require.NoError(t, err)
	assertComplete(t, resp)
	assert.Equal(t, "Sjuksköterska", resp.RoleMatch.MatchedRole)
	assert.GreaterOrEqual(t, resp.RoleMatch.SimilarityScore, 0.5)
	assert.Equal(t, domain.ScopeRole, resp.DataScope)
}

func TestRecommendAbsentRoleUsesGlobalAverages(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)

	resp, err := u.Recommend(context.Background(), request("Astronaut", "", 30))
	require.NoError(t, err)
	assertComplete(t, resp)

	assert.Equal(t, "", resp.RoleMatch.MatchedRole)
	assert.Less(t, resp.RoleMatch.SimilarityScore, 0.5)
	assert.Equal(t, domain.ConfidenceLow, resp.RoleMatch.Confidence)
	assert.Equal(t, domain.ScopeGlobal, resp.DataScope)
	assert.Equal(t, domain.UnknownIndustry, resp.Industry)
	for _, ch := range resp.ChannelRecommendations {
		assert.Equal(t, domain.ConfidenceLow, ch.Confidence)
	}
	assert.Len(t, resp.ChannelRecommendations, 5)
	assert.Equal(t, 0.0, resp.ChannelRecommendations[4].BudgetShare)
}

func TestRecommendTwoCampaignsUsesHeuristicBudget(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)

	resp, err := u.Recommend(context.Background(), request("Kock", "", 30))
	require.NoError(t, err)
	assertComplete(t, resp)

	assert.Equal(t, "Kock", resp.RoleMatch.MatchedRole)
	assert.Equal(t, "Restaurang & Café", resp.Industry)
	assert.Equal(t, domain.ScopeRole, resp.DataScope)
	assert.Equal(t, domain.BudgetHeuristic, resp.BudgetMethod)
	assert.Equal(t, 1500.0, resp.BudgetRecommendations.Standard.Total)
	assert.Contains(t, resp.OptimizationTips[0], "schablon")
}

func TestRecommendRoleSpellingVariantLoadsItsHistory(t *testing.T) {
	rows := append(dataset(),
		hc("Projekt  ledare", "Byggindustri", domain.PlatformLinkedIn, 3000, 20000, 150),
		hc("Projekt  ledare", "Byggindustri", domain.PlatformFacebook, 1500, 40000, 700),
		hc("Projekt  ledare", "Byggindustri", domain.PlatformTikTok, 900, 50000, 600),
	)
	u := newUseCaseWithCatalog(t, filteringSource(t, rows), nil, rows)

	resp, err := u.Recommend(context.Background(), request("projekt ledare", "Byggindustri", 30))
	require.NoError(t, err)
	assertComplete(t, resp)

	assert.Equal(t, "Projekt  ledare", resp.RoleMatch.MatchedRole)
	assert.Equal(t, domain.StageExact, resp.RoleMatch.Stage)
	assert.NotEqual(t, domain.ScopeGlobal, resp.DataScope)
	var campaigns int
	for _, ch := range resp.ChannelRecommendations {
		campaigns += ch.HistoricalCampaigns
	}
	assert.Equal(t, 3, campaigns)
}

func TestRecommendWithoutComparableRowsUsesPlatformWideAverage(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)
	u.predictor = predict.New(predict.Config{
		Weights:       predict.DefaultConfig().Weights,
		MinSimilarity: 0.999,
	})

	resp, err := u.Recommend(context.Background(), request("Sjuksköterksa", "", 30))
	require.NoError(t, err)
	assertComplete(t, resp)
	require.Equal(t, domain.ScopeRole, resp.DataScope)

	for _, ch := range resp.ChannelRecommendations {
		want := aggregate.Summarize(aggregate.Filter(dataset(), "", "", ch.Platform))
		assert.InDelta(t, want.AvgCTR, ch.PredictedCTR, 1e-9, ch.Platform)
		assert.Equal(t, domain.ConfidenceLow, ch.Confidence, ch.Platform)
	}
}

func TestRecommendScalesWithDays(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)

	short, err := u.Recommend(context.Background(), request("Sjuksköterska", "Vård", 30))
	require.NoError(t, err)
	long, err := u.Recommend(context.Background(), request("Sjuksköterska", "Vård", 60))
	require.NoError(t, err)
	assert.InDelta(t, 2*short.BudgetRecommendations.Premium.Total, long.BudgetRecommendations.Premium.Total, 1e-6)
}

func TestRecommendExplainerUnavailable(t *testing.T) {
	explainer := mocks.NewMockExplainer(t)
	explainer.EXPECT().Explain(mock.Anything, mock.Anything).Return("", errors.New("503 from provider"))

	u := newTestUseCase(t, filteringSource(t, dataset()), explainer)
	resp, err := u.Recommend(context.Background(), request("Sjuksköterska", "Vård", 30))
	require.NoError(t, err)
	assertComplete(t, resp)
	for _, ch := range resp.ChannelRecommendations {
		assert.NotNil(t, ch.PredictedCPC)
		assert.NotEmpty(t, ch.Confidence)
	}
}

func TestRecommendAppendsExplanation(t *testing.T) {
	var calls atomic.Int32
	explainer := mocks.NewMockExplainer(t)
	explainer.EXPECT().Explain(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, in port.ExplainInput) (string, error) {
			calls.Add(1)
			assert.Equal(t, "Sjuksköterska", in.Role)
			return "Sjuksköterskor svarar bra på " + string(in.Platform) + ".", nil
		})

	u := newTestUseCase(t, filteringSource(t, dataset()), explainer)
	resp, err := u.Recommend(context.Background(), request("Sjuksköterska", "Vård", 30))
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	for _, ch := range resp.ChannelRecommendations {
		last := ch.Insights[len(ch.Insights)-1]
		assert.Equal(t, "Sjuksköterskor svarar bra på "+string(ch.Platform)+".", last)
	}
}

func TestRecommendSlowExplainerTimesOut(t *testing.T) {
	explainer := mocks.NewMockExplainer(t)
	explainer.EXPECT().Explain(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, _ port.ExplainInput) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	u := newTestUseCase(t, filteringSource(t, dataset()), explainer)
	u.cfg.ExplainTimeout = 20 * time.Millisecond

	start := time.Now()
	resp, err := u.Recommend(context.Background(), request("Säljare", "", 30))
	require.NoError(t, err)
	assertComplete(t, resp)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRecommendValidationBeforeCollaborators(t *testing.T) {
	src := mocks.NewMockCampaignSource(t)
	u := newTestUseCase(t, src, mocks.NewMockExplainer(t))

	cases := []struct {
		req   domain.RecommendationRequest
		field string
	}{
		{domain.RecommendationRequest{Role: "x", CampaignDays: 30}, "role"},
		{domain.RecommendationRequest{Role: "  ", CampaignDays: 30}, "role"},
		{domain.RecommendationRequest{Role: "Kock", BudgetTier: "gold", CampaignDays: 30}, "budget_tier"},
		{domain.RecommendationRequest{Role: "Kock", CampaignDays: 0}, "campaign_days"},
		{domain.RecommendationRequest{Role: "Kock", CampaignDays: 366}, "campaign_days"},
	}
	for _, tc := range cases {
		_, err := u.Recommend(context.Background(), tc.req)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestRecommendDataUnavailable(t *testing.T) {
	src := mocks.NewMockCampaignSource(t)
	src.EXPECT().Campaigns(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	u := newTestUseCase(t, src, nil)
	_, err := u.Recommend(context.Background(), request("Sjuksköterska", "", 30))
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestRecommendEmptyDataset(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, nil), nil)
	_, err := u.Recommend(context.Background(), request("Sjuksköterska", "", 30))
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestAllocate(t *testing.T) {
	cpc := 10.0
	for n, want := range map[int][]float64{
		1: {100},
		2: {70, 30},
		3: {60, 30, 10},
		5: {60, 30, 10, 0, 0},
	} {
		ch := make([]domain.ChannelRecommendation, n)
		for i := range ch {
			ch[i].PredictedCPC = &cpc
		}
		allocate(ch, 1000)
		for i := range ch {
			assert.Equal(t, want[i], ch[i].BudgetShare)
			assert.InDelta(t, 10*want[i], ch[i].RecommendedBudget, 1e-9)
			require.NotNil(t, ch[i].ExpectedClicks)
			assert.InDelta(t, want[i], *ch[i].ExpectedClicks, 1e-9)
		}
	}
}

func TestScorePrefersCheapHighCTR(t *testing.T) {
	u := NewRecommendUseCase(Deps{}, DefaultConfig())
	cheap, dear := 5.0, 50.0
	a := u.score(domain.Prediction{CTR: 2, CPC: &cheap}, 10)
	b := u.score(domain.Prediction{CTR: 2, CPC: &dear}, 10)
	c := u.score(domain.Prediction{CTR: 1, CPC: &cheap}, 10)
	assert.Greater(t, a, b)
	assert.Greater(t, a, c)
	assert.InDelta(t, 2*0.5+20*0.3+0.2*math.Log1p(10), a, 1e-9)
}

func TestGetStats(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)
	resp, err := u.GetStats(context.Background(), port.StatsReq{Role: "sjuksköterska"})
	require.NoError(t, err)
	require.Len(t, resp.Platforms, 2)
	assert.Equal(t, domain.PlatformFacebook, resp.Platforms[0].Platform)
	assert.Equal(t, 5, resp.Platforms[0].CampaignCount)
}

func TestRolesAndIndustries(t *testing.T) {
	u := newTestUseCase(t, filteringSource(t, dataset()), nil)

	roles, err := u.Roles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 4)

	inds, err := u.Industries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Detaljhandel", "Restaurang & Café", "Vård", "Äldreomsorg"}, inds)
}

func TestReindexRebuildsCatalog(t *testing.T) {
	rows := append(dataset(), hc("Astronaut", "Rymdfart", domain.PlatformReddit, 500, 5000, 50))
	u := newTestUseCase(t, filteringSource(t, rows), nil)

	before := u.matcher.Match(context.Background(), "Astronaut", "")
	assert.True(t, before.IsFallback())

	require.NoError(t, u.Reindex(context.Background()))
	after := u.matcher.Match(context.Background(), "Astronaut", "")
	assert.Equal(t, "Astronaut", after.Role)
}
