package configs

// Bedrock configures the AWS Bedrock explainer. Credentials come from the
// default AWS chain.
type Bedrock struct {
	Region    string `env:"REGION" envDefault:"eu-north-1"`
	ModelID   string `env:"MODEL_ID" envDefault:"anthropic.claude-3-haiku-20240307-v1:0"`
	MaxTokens int    `env:"MAX_TOKENS" envDefault:"120"`
}
