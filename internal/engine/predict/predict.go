package predict

import (
	"math"
	"time"

	"recruitads/internal/core/domain"
	"recruitads/internal/engine/aggregate"
	"recruitads/internal/engine/embedding"
)

// Weights of the three components of a comparable campaign's weight.
type Weights struct {
	Role    float64
	Recency float64
	Budget  float64
}

type Config struct {
	Weights Weights
	// HalfLife is the campaign age at which the recency weight halves.
	HalfLife time.Duration
	// MinSimilarity is the lowest role similarity a campaign may have to
	// count as comparable.
	MinSimilarity float64
}

func DefaultConfig() Config {
	return Config{
		Weights:       Weights{Role: 0.6, Recency: 0.3, Budget: 0.1},
		HalfLife:      180 * 24 * time.Hour,
		MinSimilarity: 0.35,
	}
}

// Input is everything one platform prediction needs.
type Input struct {
	Platform domain.Platform
	// Budget is the planned total spend the campaign is compared against.
	Budget float64
	// Similarity maps normalized role names to their similarity with the
	// queried role. Roles absent from the map are not comparable.
	Similarity map[string]float64
	// Rows are the candidate campaigns; other platforms are ignored.
	Rows []domain.HistoricalCampaign
	// Baseline is the platform-wide history used when nothing is
	// comparable.
	Baseline []domain.HistoricalCampaign
}

type Predictor struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Predictor {
	if cfg.HalfLife <= 0 {
		cfg.HalfLife = DefaultConfig().HalfLife
	}
	return &Predictor{cfg: cfg, now: time.Now}
}

// MinSimilarity is the role similarity below which campaigns are ignored.
func (p *Predictor) MinSimilarity() float64 {
	return p.cfg.MinSimilarity
}

// Predict estimates CTR and CPC for in.Platform as weighted averages over
// the comparable campaigns.
func (p *Predictor) Predict(in Input) domain.Prediction {
	now := p.now()
	var (
		n               int
		wSum, ctrSum    float64
		cpcWSum, cpcSum float64
	)
	for _, c := range in.Rows {
		if c.Platform != in.Platform || !c.Admissible() {
			continue
		}
		sim, ok := in.Similarity[embedding.Key(c.Role)]
		if !ok || sim < p.cfg.MinSimilarity {
			continue
		}
		w := p.weight(sim, p.recency(c, now), budgetSimilarity(in.Budget, c.Spend))
		n++
		wSum += w
		ctrSum += w * c.CTR()
		if cpc, ok := c.CPC(); ok {
			cpcWSum += w
			cpcSum += w * cpc
		}
	}

	if n == 0 || wSum == 0 {
		return p.baseline(in)
	}
	out := domain.Prediction{
		Platform:   in.Platform,
		CTR:        ctrSum / wSum,
		Confidence: domain.ConfidenceFromSample(n),
		SampleSize: n,
	}
	if cpcWSum > 0 {
		v := cpcSum / cpcWSum
		out.CPC = &v
	}
	return out
}

func (p *Predictor) baseline(in Input) domain.Prediction {
	s := aggregate.Summarize(aggregate.Filter(in.Baseline, "", "", in.Platform))
	return domain.Prediction{
		Platform:   in.Platform,
		CTR:        s.AvgCTR,
		CPC:        s.AvgCPC,
		Confidence: domain.ConfidenceLow,
		SampleSize: 0,
		Degraded:   true,
	}
}

func (p *Predictor) weight(sim, recency, budget float64) float64 {
	w := p.cfg.Weights
	return w.Role*sim + w.Recency*recency + w.Budget*budget
}

// recency halves every HalfLife. Campaigns without dates count as one
// half-life old.
func (p *Predictor) recency(c domain.HistoricalCampaign, now time.Time) float64 {
	at := c.CompletedAt()
	if at.IsZero() {
		return 0.5
	}
	age := now.Sub(at)
	if age <= 0 {
		return 1
	}
	return math.Pow(0.5, float64(age)/float64(p.cfg.HalfLife))
}

func budgetSimilarity(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	return math.Min(a, b) / math.Max(a, b)
}
