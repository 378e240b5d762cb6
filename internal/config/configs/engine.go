package configs

import "time"

// Engine tunes matching, prediction and the per-collaborator timeouts.
type Engine struct {
	// Embedder selects the embedding provider: "ngram" (offline) or
	// "gemini".
	Embedder string `env:"EMBEDDER" envDefault:"ngram"`
	// Explainer selects the sentence generator: "none", "gemini" or
	// "bedrock".
	Explainer string `env:"EXPLAINER" envDefault:"none"`
	// Classifier enables the model-backed industry classifier.
	Classifier bool `env:"CLASSIFIER" envDefault:"false"`

	MinScore      float64 `env:"MIN_SCORE" envDefault:"0.35"`
	TopK          int     `env:"TOP_K" envDefault:"5"`
	IndustryPool  int     `env:"INDUSTRY_POOL" envDefault:"50"`
	MinSimilarity float64 `env:"MIN_SIMILARITY" envDefault:"0.35"`

	RoleWeight    float64       `env:"ROLE_WEIGHT" envDefault:"0.6"`
	RecencyWeight float64       `env:"RECENCY_WEIGHT" envDefault:"0.3"`
	BudgetWeight  float64       `env:"BUDGET_WEIGHT" envDefault:"0.1"`
	HalfLife      time.Duration `env:"HALF_LIFE" envDefault:"4320h"`

	EmbedTimeout    time.Duration `env:"EMBED_TIMEOUT" envDefault:"2s"`
	SearchTimeout   time.Duration `env:"SEARCH_TIMEOUT" envDefault:"1s"`
	DataTimeout     time.Duration `env:"DATA_TIMEOUT" envDefault:"5s"`
	ExplainTimeout  time.Duration `env:"EXPLAIN_TIMEOUT" envDefault:"3s"`
	ClassifyTimeout time.Duration `env:"CLASSIFY_TIMEOUT" envDefault:"2s"`
}
