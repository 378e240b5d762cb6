package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
	"recruitads/internal/metrics"
)

// Config tunes the nearest-neighbour stages.
type Config struct {
	// MinScore is the lowest embedding similarity accepted before the
	// global fallback is returned.
	MinScore float64
	// TopK is the number of neighbours considered by the embedding stage.
	TopK int
	// IndustryPool is how many neighbours are fetched before restricting
	// them to one industry.
	IndustryPool  int
	EmbedTimeout  time.Duration
	SearchTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		MinScore:      0.35,
		TopK:          5,
		IndustryPool:  50,
		EmbedTimeout:  2 * time.Second,
		SearchTimeout: time.Second,
	}
}

// strategy is one stage of the match chain. It reports false to pass the
// query on to the next stage.
type strategy func(ctx context.Context, cat *Catalog, q *query) (domain.RoleMatch, bool)

// query carries per-call state shared between stages, so the query is
// embedded at most once.
type query struct {
	key      string
	stem     string
	industry string

	embedded bool
	vector   []float32

	pool  []domain.ScoredRole
	poolK int

	best         float64
	alternatives []domain.ScoredRole
}

// Matcher resolves free-text roles to canonical catalog roles.
type Matcher struct {
	embedder port.Embedder
	index    port.VectorIndex
	cfg      Config
	log      *slog.Logger
	metrics  *metrics.Metrics

	catalog    atomic.Pointer[Catalog]
	strategies []strategy
	rebuildMu  sync.Mutex
}

// New builds a matcher with an empty catalog. embedder and index may be nil,
// which disables the nearest-neighbour stages.
func New(embedder port.Embedder, index port.VectorIndex, cfg Config, log *slog.Logger, m *metrics.Metrics) *Matcher {
	if log == nil {
		log = slog.Default()
	}
	def := DefaultConfig()
	if cfg.TopK <= 0 {
		cfg.TopK = def.TopK
	}
	if cfg.IndustryPool < cfg.TopK {
		cfg.IndustryPool = max(def.IndustryPool, cfg.TopK)
	}
	mt := &Matcher{embedder: embedder, index: index, cfg: cfg, log: log, metrics: m}
	mt.strategies = []strategy{mt.exact, mt.stemmed, mt.industryFiltered, mt.nearest}
	mt.catalog.Store(NewCatalog(nil))
	return mt
}

// Catalog returns the current catalog snapshot.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog.Load()
}

// Rebuild replaces the catalog and re-populates the vector index. Roles that
// cannot be embedded stay reachable through the exact and stem stages.
//
// Every role is embedded before the index is touched, so a cancelled or
// failing rebuild leaves the live catalog and its index as they were. If
// loading the index fails, the previous vectors are restored.
func (m *Matcher) Rebuild(ctx context.Context, roles []domain.RoleSummary) error {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	cat := NewCatalog(roles)
	if m.index != nil && m.embedder != nil {
		vectors, err := m.embedAll(ctx, cat)
		if err != nil {
			return err
		}
		// The index is loaded to completion once it has been reset.
		lctx := context.WithoutCancel(ctx)
		if err := m.load(lctx, vectors); err != nil {
			if rerr := m.load(lctx, m.catalog.Load().vectors); rerr != nil {
				m.log.Error("restore role index", slog.Any("error", rerr))
			}
			return err
		}
		cat.vectors = vectors
	}
	m.catalog.Store(cat)
	m.log.Info("role catalog rebuilt", slog.Int("roles", cat.Len()))
	return nil
}

func (m *Matcher) embedAll(ctx context.Context, cat *Catalog) ([]indexed, error) {
	out := make([]indexed, 0, len(cat.entries))
	var skipped int
	for _, e := range cat.entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("embed roles: %w", err)
		}
		vec, err := m.embedder.Embed(ctx, e.key)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("embed roles: %w", ctx.Err())
			}
			skipped++
			m.log.Warn("role not indexed", slog.String("role", e.role), slog.Any("error", err))
			continue
		}
		out = append(out, indexed{key: e.key, vector: vec})
	}
	if skipped > 0 {
		m.metrics.Degraded("embedding")
	}
	return out, nil
}

func (m *Matcher) load(ctx context.Context, vectors []indexed) error {
	if err := m.index.Reset(ctx); err != nil {
		return fmt.Errorf("reset role index: %w", err)
	}
	for _, v := range vectors {
		if err := m.index.Upsert(ctx, v.key, v.vector); err != nil {
			return fmt.Errorf("index role %q: %w", v.key, err)
		}
	}
	return nil
}

// Match resolves role to a canonical role. It never fails: when no stage
// succeeds the global fallback match is returned.
func (m *Matcher) Match(ctx context.Context, role, industry string) domain.RoleMatch {
	cat := m.catalog.Load()
	q := &query{key: Normalize(role), stem: Stem(role), industry: Normalize(industry)}

	if q.key != "" && cat.Len() > 0 {
		for _, s := range m.strategies {
			if res, ok := s(ctx, cat, q); ok {
				res.Query = role
				m.metrics.MatchStage(string(res.Stage))
				return res
			}
		}
	}

	m.metrics.MatchStage(string(domain.StageFallback))
	return domain.RoleMatch{
		Query:        role,
		Score:        q.best,
		Confidence:   domain.ConfidenceLow,
		Stage:        domain.StageFallback,
		Alternatives: q.alternatives,
	}
}

func (m *Matcher) exact(_ context.Context, cat *Catalog, q *query) (domain.RoleMatch, bool) {
	e, ok := cat.lookup(q.key)
	if !ok {
		return domain.RoleMatch{}, false
	}
	return domain.RoleMatch{
		Role:       e.role,
		Score:      1,
		Confidence: domain.ConfidenceHigh,
		Stage:      domain.StageExact,
	}, true
}

func (m *Matcher) stemmed(_ context.Context, cat *Catalog, q *query) (domain.RoleMatch, bool) {
	idx := cat.byStem[q.stem]
	if q.stem == "" || len(idx) == 0 {
		return domain.RoleMatch{}, false
	}
	cands := make([]domain.ScoredRole, 0, len(idx))
	for _, i := range idx {
		cands = append(cands, cat.scored(cat.entries[i], StemScore))
	}
	rank(cands)
	return domain.RoleMatch{
		Role:         cands[0].Role,
		Score:        StemScore,
		Confidence:   domain.ConfidenceFromScore(StemScore),
		Stage:        domain.StageStem,
		Alternatives: cands[1:],
	}, true
}

func (m *Matcher) industryFiltered(ctx context.Context, cat *Catalog, q *query) (domain.RoleMatch, bool) {
	if q.industry == "" {
		return domain.RoleMatch{}, false
	}
	pool := m.neighbours(ctx, cat, q, m.cfg.IndustryPool)
	var cands []domain.ScoredRole
	for _, c := range pool {
		e, _ := cat.lookup(Normalize(c.Role))
		if cat.inIndustry(e, q.industry) {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return domain.RoleMatch{}, false
	}
	rank(cands)
	if cands[0].Score < domain.MediumSimilarity {
		return domain.RoleMatch{}, false
	}
	return domain.RoleMatch{
		Role:         cands[0].Role,
		Score:        cands[0].Score,
		Confidence:   domain.ConfidenceFromScore(cands[0].Score),
		Stage:        domain.StageIndustry,
		Alternatives: head(cands[1:], m.cfg.TopK-1),
	}, true
}

func (m *Matcher) nearest(ctx context.Context, cat *Catalog, q *query) (domain.RoleMatch, bool) {
	cands := m.neighbours(ctx, cat, q, m.cfg.TopK)
	if len(cands) == 0 {
		return domain.RoleMatch{}, false
	}
	rank(cands)
	q.best = cands[0].Score
	q.alternatives = cands
	if cands[0].Score < m.cfg.MinScore {
		return domain.RoleMatch{}, false
	}
	return domain.RoleMatch{
		Role:         cands[0].Role,
		Score:        cands[0].Score,
		Confidence:   domain.ConfidenceFromScore(cands[0].Score),
		Stage:        domain.StageEmbedding,
		Alternatives: cands[1:],
	}, true
}

// neighbours returns up to k catalog roles closest to the query. A larger
// earlier search is reused. Embedding or search failures yield nil.
func (m *Matcher) neighbours(ctx context.Context, cat *Catalog, q *query, k int) []domain.ScoredRole {
	if m.embedder == nil || m.index == nil {
		return nil
	}
	if q.poolK >= k {
		return head(append([]domain.ScoredRole(nil), q.pool...), k)
	}
	if !q.embedded {
		q.embedded = true
		ectx, cancel := withTimeout(ctx, m.cfg.EmbedTimeout)
		vec, err := m.embedder.Embed(ectx, q.key)
		cancel()
		if err != nil {
			m.metrics.Degraded("embedding")
			m.log.Warn("query embedding failed", slog.String("role", q.key), slog.Any("error", err))
			return nil
		}
		q.vector = vec
	}
	if q.vector == nil {
		return nil
	}

	sctx, cancel := withTimeout(ctx, m.cfg.SearchTimeout)
	hits, err := m.index.Search(sctx, q.vector, k)
	cancel()
	if err != nil {
		m.metrics.Degraded("vector_index")
		m.log.Warn("role index search failed", slog.Any("error", err))
		return nil
	}

	out := make([]domain.ScoredRole, 0, len(hits))
	for _, h := range hits {
		e, ok := cat.lookup(h.ID)
		if !ok {
			continue
		}
		out = append(out, cat.scored(e, clamp(h.Score)))
	}
	rank(out)
	q.pool, q.poolK = out, k
	return append([]domain.ScoredRole(nil), out...)
}

// rank orders candidates by score, then by sample size, then by name.
func rank(c []domain.ScoredRole) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].Score != c[j].Score {
			return c[i].Score > c[j].Score
		}
		if c[i].Samples != c[j].Samples {
			return c[i].Samples > c[j].Samples
		}
		return c[i].Role < c[j].Role
	})
}

func head(c []domain.ScoredRole, n int) []domain.ScoredRole {
	if n < 0 {
		n = 0
	}
	if len(c) > n {
		return c[:n]
	}
	return c
}

func clamp(s float64) float64 {
	if math.IsNaN(s) {
		return 0
	}
	return math.Max(0, math.Min(1, s))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
