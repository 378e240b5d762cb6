package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"recruitads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Engine    configs.Engine    `envPrefix:"ENGINE_"`
	Gemini    configs.Gemini    `envPrefix:"GEMINI_"`
	Bedrock   configs.Bedrock   `envPrefix:"BEDROCK_"`
	Warehouse configs.Warehouse `envPrefix:"WAREHOUSE_"`
	Industry  configs.Industry  `envPrefix:"INDUSTRY_"`
	S3        configs.S3        `envPrefix:"S3_"`
}

// Load reads an optional .env file, then configuration from environment
// variables into a Config. Variables already set in the environment win
// over the file.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
