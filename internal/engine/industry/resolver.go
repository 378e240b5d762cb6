package industry

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
	"recruitads/internal/engine/embedding"
	"recruitads/internal/metrics"
)

// Resolver labels a role or campaign name with an industry: keyword rules
// first, then the classifier, then "unknown".
type Resolver struct {
	rules      atomic.Pointer[Rules]
	classifier port.IndustryClassifier
	remote     port.LabelCache
	timeout    time.Duration
	log        *slog.Logger
	metrics    *metrics.Metrics

	mu     sync.RWMutex
	labels map[string]string
	group  singleflight.Group
}

// NewResolver returns a resolver over rules. classifier and remote may be
// nil; without a classifier unmatched text resolves to "unknown".
func NewResolver(rules *Rules, classifier port.IndustryClassifier, remote port.LabelCache, timeout time.Duration, log *slog.Logger, m *metrics.Metrics) *Resolver {
	if rules == nil {
		rules = DefaultRules()
	}
	if log == nil {
		log = slog.Default()
	}
	r := &Resolver{
		classifier: classifier,
		remote:     remote,
		timeout:    timeout,
		log:        log,
		metrics:    m,
		labels:     make(map[string]string),
	}
	r.rules.Store(rules)
	return r
}

// SetRules swaps the keyword table. Cached classifier labels are kept.
func (r *Resolver) SetRules(rules *Rules) {
	r.rules.Store(rules)
}

// Industries lists the labels of the current keyword table.
func (r *Resolver) Industries() []string {
	return r.rules.Load().Industries()
}

// Resolve never fails. Classifier errors are logged and yield "unknown",
// which is not cached so a later request can retry.
func (r *Resolver) Resolve(ctx context.Context, role, company string) string {
	if label, ok := r.rules.Load().Match(role + " " + company); ok {
		return label
	}
	if r.classifier == nil {
		return domain.UnknownIndustry
	}

	key := cacheKey(role, company)
	r.mu.RLock()
	label, ok := r.labels[key]
	r.mu.RUnlock()
	if ok {
		return label
	}

	res, _, _ := r.group.Do(key, func() (interface{}, error) {
		return r.classify(ctx, key, role, company), nil
	})
	return res.(string)
}

func (r *Resolver) classify(ctx context.Context, key, role, company string) string {
	if r.remote != nil {
		label, ok, err := r.remote.GetLabel(ctx, key)
		if err != nil {
			r.log.Warn("industry cache read failed", slog.Any("error", err))
		}
		if ok && err == nil {
			r.store(key, label)
			return label
		}
	}

	cctx, cancel := ctx, context.CancelFunc(func() {})
	if r.timeout > 0 {
		cctx, cancel = context.WithTimeout(ctx, r.timeout)
	}
	label, err := r.classifier.Classify(cctx, role, company)
	cancel()
	if err != nil {
		r.metrics.Degraded("classifier")
		r.log.Warn("industry classifier unavailable",
			slog.String("role", role), slog.String("company", company), slog.Any("error", err))
		return domain.UnknownIndustry
	}
	if label = strings.TrimSpace(label); label == "" {
		label = domain.UnknownIndustry
	}

	r.store(key, label)
	if r.remote != nil {
		if err := r.remote.SetLabel(ctx, key, label); err != nil {
			r.log.Warn("industry cache write failed", slog.Any("error", err))
		}
	}
	return label
}

func (r *Resolver) store(key, label string) {
	r.mu.Lock()
	r.labels[key] = label
	r.mu.Unlock()
}

func cacheKey(role, company string) string {
	return embedding.Key(role) + "|" + embedding.Key(company)
}
