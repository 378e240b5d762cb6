package configs

import "time"

// Gemini configures the Google generative AI client used for embeddings,
// explanations and industry classification.
type Gemini struct {
	APIKey         string        `env:"API_KEY"`
	EmbeddingModel string        `env:"EMBEDDING_MODEL" envDefault:"text-embedding-004"`
	TextModel      string        `env:"TEXT_MODEL" envDefault:"gemini-2.0-flash"`
	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"2"`
	RetryBackoff   time.Duration `env:"RETRY_BACKOFF" envDefault:"200ms"`
	// BreakerFailures consecutive failures open the circuit for
	// BreakerTimeout.
	BreakerFailures uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerTimeout  time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`
}
