package configs

import "time"

// Redis configures the optional shared cache for embeddings and industry
// labels. An empty URL disables it.
type Redis struct {
	URL       string        `env:"URL"`
	KeyPrefix string        `env:"KEY_PREFIX" envDefault:"recruitads:"`
	TTL       time.Duration `env:"TTL" envDefault:"720h"`
}

func (c Redis) Enabled() bool {
	return c.URL != ""
}
