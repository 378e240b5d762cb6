package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"recruitads/internal/adapter/prompt"
	"recruitads/internal/config/configs"
	"recruitads/internal/core/port"
)

type invoker interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, opts ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type request struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	Messages         []message `json:"messages"`
}

type response struct {
	Content []contentBlock `json:"content"`
}

// Explainer implements port.Explainer with an Anthropic model on AWS
// Bedrock.
type Explainer struct {
	client    invoker
	modelID   string
	maxTokens int
}

// New loads AWS credentials from the default chain.
func New(ctx context.Context, cfg configs.Bedrock) (*Explainer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("bedrock: load AWS config: %w", err)
	}
	return newExplainer(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

func newExplainer(client invoker, cfg configs.Bedrock) *Explainer {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 120
	}
	return &Explainer{client: client, modelID: cfg.ModelID, maxTokens: maxTokens}
}

func (e *Explainer) Explain(ctx context.Context, in port.ExplainInput) (string, error) {
	body, err := json.Marshal(request{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        e.maxTokens,
		Temperature:      0.4,
		Messages: []message{{
			Role:    "user",
			Content: []contentBlock{{Type: "text", Text: prompt.Explain(in)}},
		}},
	})
	if err != nil {
		return "", err
	}

	out, err := e.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(e.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke: %w", err)
	}

	var resp response
	if err = json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("bedrock response: %w", err)
	}
	var b strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	text := prompt.Sentence(b.String())
	if text == "" {
		return "", errors.New("bedrock: empty explanation")
	}
	return text, nil
}

var _ port.Explainer = (*Explainer)(nil)
