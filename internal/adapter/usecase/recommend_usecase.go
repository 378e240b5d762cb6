package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
	"recruitads/internal/engine/aggregate"
	"recruitads/internal/engine/budget"
	"recruitads/internal/engine/embedding"
	"recruitads/internal/engine/industry"
	"recruitads/internal/engine/matcher"
	"recruitads/internal/engine/predict"
	"recruitads/internal/metrics"
)

// RankingWeights combine predicted CTR, inverse CPC and sample volume into
// the channel performance score.
type RankingWeights struct {
	CTR    float64
	CPC    float64
	Volume float64
}

type Config struct {
	Ranking        RankingWeights
	DataTimeout    time.Duration
	ExplainTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Ranking:        RankingWeights{CTR: 0.5, CPC: 0.3, Volume: 0.2},
		DataTimeout:    5 * time.Second,
		ExplainTimeout: 3 * time.Second,
	}
}

// Channel mixes by number of ranked channels, in percent of the budget.
var shareSplits = [][]float64{
	{100},
	{70, 30},
	{60, 30, 10},
}

// Deps are the collaborators of RecommendUseCase. Explainer and Embeddings
// are optional.
type Deps struct {
	Source     port.CampaignSource
	Matcher    *matcher.Matcher
	Resolver   *industry.Resolver
	Predictor  *predict.Predictor
	Embeddings *embedding.Store
	Explainer  port.Explainer
	Log        *slog.Logger
	Metrics    *metrics.Metrics
}

// RecommendUseCase composes the engine into recommendations. It implements
// port.RecommendUseCase.
type RecommendUseCase struct {
	source     port.CampaignSource
	aggregator *aggregate.Aggregator
	matcher    *matcher.Matcher
	resolver   *industry.Resolver
	predictor  *predict.Predictor
	embeddings *embedding.Store
	explainer  port.Explainer
	cfg        Config
	log        *slog.Logger
	metrics    *metrics.Metrics
}

func NewRecommendUseCase(d Deps, cfg Config) *RecommendUseCase {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Predictor == nil {
		d.Predictor = predict.New(predict.DefaultConfig())
	}
	return &RecommendUseCase{
		source:     d.Source,
		aggregator: aggregate.New(d.Source),
		matcher:    d.Matcher,
		resolver:   d.Resolver,
		predictor:  d.Predictor,
		embeddings: d.Embeddings,
		explainer:  d.Explainer,
		cfg:        cfg,
		log:        d.Log,
		metrics:    d.Metrics,
	}
}

// Recommend validates req and builds a ranked recommendation. Collaborator
// failures degrade the answer; only validation errors and a data source
// without data are returned.
func (u *RecommendUseCase) Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tier := req.Tier()
	days := req.CampaignDays

	ind := strings.TrimSpace(req.Industry)
	if ind == "" {
		ind = u.resolver.Resolve(ctx, req.Role, req.Company)
	}
	matchIndustry := ind
	if ind == domain.UnknownIndustry {
		matchIndustry = ""
	}

	match := u.matcher.Match(ctx, req.Role, matchIndustry)
	sim := u.similarities(match)

	var rows []domain.HistoricalCampaign
	if len(sim) > 0 {
		roles := make([]string, 0, len(sim))
		for r := range sim {
			roles = append(roles, r)
		}
		sort.Strings(roles)
		var err error
		if rows, err = u.campaigns(ctx, port.CampaignFilter{Roles: roles}); err != nil {
			return nil, err
		}
	}

	scope, scopeRows, predRows := u.scope(match, matchIndustry, rows)
	var global []domain.HistoricalCampaign
	if scope == domain.ScopeGlobal {
		var err error
		if global, err = u.campaigns(ctx, port.CampaignFilter{}); err != nil {
			return nil, err
		}
		scopeRows = aggregate.Filter(global, "", "", "")
		predRows, sim = nil, nil
		if len(scopeRows) == 0 {
			return nil, domain.ErrDataUnavailable
		}
	}
	baseline := global
	if baseline == nil {
		baseline = scopeRows
	}

	stats := aggregate.ByPlatform(scopeRows)
	tiers := budget.Tiers(scopeRows, days)
	selected := tiers.Get(tier)

	platforms := make([]domain.Platform, 0, len(stats))
	for p := range stats {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i] < platforms[j] })

	preds := make([]domain.Prediction, len(platforms))
	g, _ := errgroup.WithContext(ctx)
	for i, p := range platforms {
		g.Go(func() error {
			preds[i] = u.predictor.Predict(predict.Input{
				Platform:   p,
				Budget:     selected.Total,
				Similarity: sim,
				Rows:       predRows,
				Baseline:   baseline,
			})
			return nil
		})
	}
	_ = g.Wait()

	// Platforms without comparable campaigns fall back to the platform-wide
	// average over all roles.
	if global == nil && anyDegraded(preds) {
		if all, err := u.campaigns(ctx, port.CampaignFilter{}); err == nil {
			for i, pred := range preds {
				if pred.Degraded {
					preds[i] = u.predictor.Predict(predict.Input{
						Platform: pred.Platform,
						Budget:   selected.Total,
						Baseline: all,
					})
				}
			}
		}
	}

	roleAvg := aggregate.Summarize(scopeRows).AvgCTR
	channels := make([]domain.ChannelRecommendation, len(preds))
	for i, pred := range preds {
		st := stats[pred.Platform]
		channels[i] = domain.ChannelRecommendation{
			Platform:            pred.Platform,
			PredictedCTR:        pred.CTR,
			PredictedCPC:        pred.CPC,
			Confidence:          pred.Confidence,
			HistoricalCampaigns: st.CampaignCount,
			Insights:            channelInsights(match.Role, pred, st, roleAvg),
			Score:               u.score(pred, st.CampaignCount),
		}
	}
	rankChannels(channels)
	allocate(channels, selected.Total)
	u.explain(ctx, match, ind, channels)

	u.metrics.Recommendation(string(scope))
	return &domain.RecommendationResponse{
		RequestID: uuid.NewString(),
		RoleMatch: domain.RoleMatchView{
			MatchedRole:     match.Role,
			SimilarityScore: match.Score,
			Confidence:      match.Confidence,
			Stage:           match.Stage,
		},
		Industry:     ind,
		DataScope:    scope,
		BudgetMethod: tiers.Method,
		SelectedTier: tier,
		BudgetRecommendations: domain.BudgetRecommendations{
			Minimum:  tiers.Minimum,
			Standard: tiers.Standard,
			Premium:  tiers.Premium,
		},
		ChannelRecommendations: channels,
		OptimizationTips:       optimizationTips(match, tiers.Method, channels),
	}, nil
}

func anyDegraded(preds []domain.Prediction) bool {
	for _, p := range preds {
		if p.Degraded {
			return true
		}
	}
	return false
}

// similarities maps the matched role and close alternatives to their
// similarity. It is empty for the global fallback.
func (u *RecommendUseCase) similarities(m domain.RoleMatch) map[string]float64 {
	if m.IsFallback() {
		return nil
	}
	sim := map[string]float64{embedding.Key(m.Role): m.Score}
	for _, alt := range m.Alternatives {
		k := embedding.Key(alt.Role)
		if _, ok := sim[k]; ok || alt.Score < u.predictor.MinSimilarity() {
			continue
		}
		sim[k] = alt.Score
	}
	return sim
}

// scope picks the narrowest slice of history with data: role and industry
// when it holds at least aggregate.MinSample campaigns, else the role, else
// everything.
func (u *RecommendUseCase) scope(m domain.RoleMatch, ind string, rows []domain.HistoricalCampaign) (domain.DataScope, []domain.HistoricalCampaign, []domain.HistoricalCampaign) {
	if m.IsFallback() {
		return domain.ScopeGlobal, nil, nil
	}
	if ind != "" {
		if ri := aggregate.Filter(rows, m.Role, ind, ""); len(ri) >= aggregate.MinSample {
			return domain.ScopeRoleIndustry, ri, aggregate.Filter(rows, "", ind, "")
		}
	}
	if r := aggregate.Filter(rows, m.Role, "", ""); len(r) > 0 {
		return domain.ScopeRole, r, rows
	}
	return domain.ScopeGlobal, nil, nil
}

func (u *RecommendUseCase) campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.HistoricalCampaign, error) {
	dctx, cancel := withTimeout(ctx, u.cfg.DataTimeout)
	defer cancel()
	rows, err := u.source.Campaigns(dctx, f)
	if err != nil {
		u.metrics.Degraded("campaign_source")
		u.log.Error("campaign source failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	return rows, nil
}

func (u *RecommendUseCase) score(p domain.Prediction, n int) float64 {
	w := u.cfg.Ranking
	s := p.CTR*w.CTR + math.Log1p(float64(n))*w.Volume
	if p.CPC != nil && *p.CPC > 0 {
		s += 100 / *p.CPC * w.CPC
	}
	return s
}

func rankChannels(ch []domain.ChannelRecommendation) {
	sort.SliceStable(ch, func(i, j int) bool {
		if ch[i].Score != ch[j].Score {
			return ch[i].Score > ch[j].Score
		}
		return ch[i].Platform < ch[j].Platform
	})
}

// allocate splits total over the top channels. Channels past the third get
// no budget but stay listed.
func allocate(ch []domain.ChannelRecommendation, total float64) {
	if len(ch) == 0 {
		return
	}
	split := shareSplits[min(len(ch), len(shareSplits))-1]
	for i := range ch {
		if i < len(split) {
			ch[i].BudgetShare = split[i]
		}
		ch[i].RecommendedBudget = total * ch[i].BudgetShare / 100
		if cpc := ch[i].PredictedCPC; cpc != nil && *cpc > 0 {
			v := ch[i].RecommendedBudget / *cpc
			ch[i].ExpectedClicks = &v
		}
	}
}

// explain appends one generated sentence to each funded channel. Failures
// leave the statistical insights untouched.
func (u *RecommendUseCase) explain(ctx context.Context, m domain.RoleMatch, ind string, ch []domain.ChannelRecommendation) {
	if u.explainer == nil {
		return
	}
	role := m.Role
	if role == "" {
		role = m.Query
	}
	var (
		wg     sync.WaitGroup
		failed sync.Once
	)
	for i := range ch {
		if ch[i].BudgetShare <= 0 {
			continue
		}
		wg.Add(1)
		go func(c *domain.ChannelRecommendation) {
			defer wg.Done()
			ectx, cancel := withTimeout(ctx, u.cfg.ExplainTimeout)
			defer cancel()
			text, err := u.explainer.Explain(ectx, port.ExplainInput{
				Role:       role,
				Industry:   ind,
				Platform:   c.Platform,
				CTR:        c.PredictedCTR,
				CPC:        c.PredictedCPC,
				SampleSize: c.HistoricalCampaigns,
				Confidence: c.Confidence,
			})
			if err != nil {
				failed.Do(func() {
					u.metrics.Degraded("explainer")
					u.log.Warn("explanation unavailable", slog.Any("error", err))
				})
				return
			}
			if text = strings.TrimSpace(text); text != "" {
				c.Insights = append(c.Insights, text)
			}
		}(&ch[i])
	}
	wg.Wait()
}

// GetStats aggregates history per platform.
func (u *RecommendUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	dctx, cancel := withTimeout(ctx, u.cfg.DataTimeout)
	defer cancel()
	stats, err := u.aggregator.Aggregate(dctx, strings.TrimSpace(req.Role), strings.TrimSpace(req.Industry), req.Platform)
	if err != nil {
		u.log.Error("stats aggregation failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	return &port.StatsResp{
		Role:      req.Role,
		Industry:  req.Industry,
		Platforms: aggregate.Sorted(stats),
	}, nil
}

// Roles lists the matcher catalog, or the source when no catalog is built.
func (u *RecommendUseCase) Roles(ctx context.Context) ([]domain.RoleSummary, error) {
	if cat := u.matcher.Catalog(); cat.Len() > 0 {
		return cat.Roles(), nil
	}
	dctx, cancel := withTimeout(ctx, u.cfg.DataTimeout)
	defer cancel()
	roles, err := u.source.Roles(dctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	return roles, nil
}

// Industries lists industries seen in history, falling back to the keyword
// table labels.
func (u *RecommendUseCase) Industries(ctx context.Context) ([]string, error) {
	roles, err := u.Roles(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]string)
	for _, r := range roles {
		for _, ind := range r.Industries {
			k := embedding.Key(ind)
			if _, ok := seen[k]; !ok && k != "" && k != domain.UnknownIndustry {
				seen[k] = ind
			}
		}
	}
	if len(seen) == 0 {
		return u.resolver.Industries(), nil
	}
	out := make([]string, 0, len(seen))
	for _, ind := range seen {
		out = append(out, ind)
	}
	sort.Strings(out)
	return out, nil
}

// Reindex reloads roles, drops cached embeddings and rebuilds the matcher.
func (u *RecommendUseCase) Reindex(ctx context.Context) error {
	roles, err := u.source.Roles(ctx)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	if u.embeddings != nil {
		if err := u.embeddings.Invalidate(ctx); err != nil {
			u.log.Warn("embedding invalidation incomplete", slog.Any("error", err))
		}
	}
	if err := u.matcher.Rebuild(ctx, roles); err != nil {
		return fmt.Errorf("rebuild matcher: %w", err)
	}
	return nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

var _ port.RecommendUseCase = (*RecommendUseCase)(nil)
