package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"recruitads/internal/adapter/bedrock"
	"recruitads/internal/adapter/gemini"
	"recruitads/internal/adapter/memindex"
	"recruitads/internal/adapter/ngram"
	"recruitads/internal/adapter/postgres"
	"recruitads/internal/adapter/rediscache"
	"recruitads/internal/adapter/usecase"
	"recruitads/internal/adapter/warehouse"
	"recruitads/internal/config/configs"
	"recruitads/internal/core/port"
	"recruitads/internal/db"
	"recruitads/internal/engine/embedding"
	"recruitads/internal/engine/industry"
	"recruitads/internal/engine/matcher"
	"recruitads/internal/engine/predict"
	"recruitads/internal/metrics"
)

// engine holds the composed recommendation service and the resources it
// owns.
type engine struct {
	usecase  *usecase.RecommendUseCase
	resolver *industry.Resolver
	metrics  *metrics.Metrics
	closers  []io.Closer
	pools    []*pgxpool.Pool
}

func (e *engine) Close() {
	for _, c := range e.closers {
		c.Close()
	}
	for _, p := range e.pools {
		p.Close()
	}
}

func loadRules(cfg configs.Industry) (*industry.Rules, error) {
	if cfg.RulesPath == "" {
		return industry.DefaultRules(), nil
	}
	return industry.LoadRules(cfg.RulesPath)
}

// buildEngine wires adapters chosen by configuration into the use case.
func (a *app) buildEngine(ctx context.Context) (_ *engine, err error) {
	cfg := a.cfg
	log := a.logger
	e := &engine{metrics: metrics.New()}
	defer func() {
		if err != nil {
			e.Close()
		}
	}()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			log.Error("migration error", slog.Any("error", err))
		} else {
			log.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	e.pools = append(e.pools, pool)

	var source port.CampaignSource = postgres.NewCampaignRepository(pool)
	if cfg.Warehouse.Enabled() {
		wh, err := warehouse.Open(ctx, cfg.Warehouse.Driver, cfg.Warehouse.DSN, cfg.Warehouse.Table)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, wh)
		source = wh
		log.Info("reading campaigns from warehouse", slog.String("driver", cfg.Warehouse.Driver))
	}

	var cache *rediscache.Cache
	if cfg.Redis.Enabled() {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis connection: %w", err)
		}
		e.closers = append(e.closers, client)
		cache = rediscache.NewCache(client, cfg.Redis.KeyPrefix, cfg.Redis.TTL)
	}

	var gc *gemini.Client
	if cfg.Engine.Embedder == "gemini" || cfg.Engine.Explainer == "gemini" || cfg.Engine.Classifier {
		if gc, err = gemini.New(ctx, cfg.Gemini, log); err != nil {
			return nil, err
		}
	}

	var embedder port.Embedder = ngram.New(0)
	if cfg.Engine.Embedder == "gemini" {
		embedder = gemini.NewEmbedder(gc)
	}
	var vectorCache port.VectorCache
	var labelCache port.LabelCache
	if cache != nil {
		vectorCache, labelCache = cache, cache
	}
	store := embedding.NewStore(embedder, vectorCache, log, e.metrics)

	var index port.VectorIndex = memindex.New()
	if cfg.Psql.VectorIndex {
		index = postgres.NewRoleIndex(pool)
	}
	m := matcher.New(store, index, matcher.Config{
		MinScore:      cfg.Engine.MinScore,
		TopK:          cfg.Engine.TopK,
		IndustryPool:  cfg.Engine.IndustryPool,
		EmbedTimeout:  cfg.Engine.EmbedTimeout,
		SearchTimeout: cfg.Engine.SearchTimeout,
	}, log, e.metrics)

	rules, err := loadRules(cfg.Industry)
	if err != nil {
		return nil, err
	}
	var classifier port.IndustryClassifier
	if cfg.Engine.Classifier {
		classifier = gemini.NewClassifier(gc, rules.Industries())
	}
	e.resolver = industry.NewResolver(rules, classifier, labelCache, cfg.Engine.ClassifyTimeout, log, e.metrics)

	var explainer port.Explainer
	switch cfg.Engine.Explainer {
	case "gemini":
		explainer = gemini.NewExplainer(gc)
	case "bedrock":
		if explainer, err = bedrock.New(ctx, cfg.Bedrock); err != nil {
			return nil, err
		}
	}

	predictor := predict.New(predict.Config{
		Weights: predict.Weights{
			Role:    cfg.Engine.RoleWeight,
			Recency: cfg.Engine.RecencyWeight,
			Budget:  cfg.Engine.BudgetWeight,
		},
		HalfLife:      cfg.Engine.HalfLife,
		MinSimilarity: cfg.Engine.MinSimilarity,
	})

	ucfg := usecase.DefaultConfig()
	ucfg.DataTimeout = cfg.Engine.DataTimeout
	ucfg.ExplainTimeout = cfg.Engine.ExplainTimeout
	e.usecase = usecase.NewRecommendUseCase(usecase.Deps{
		Source:     source,
		Matcher:    m,
		Resolver:   e.resolver,
		Predictor:  predictor,
		Embeddings: store,
		Explainer:  explainer,
		Log:        log,
		Metrics:    e.metrics,
	}, ucfg)
	return e, nil
}
