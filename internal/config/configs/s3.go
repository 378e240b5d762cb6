package configs

// S3 configures access for importing campaign exports from s3:// URLs.
type S3 struct {
	Region   string `env:"REGION" envDefault:"eu-north-1"`
	Endpoint string `env:"ENDPOINT"`
	// PathStyle is needed by most S3-compatible stores.
	PathStyle bool `env:"PATH_STYLE" envDefault:"false"`
}
