package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"recruitads/internal/adapter/prompt"
	"recruitads/internal/core/port"
)

// Explainer implements port.Explainer with a Gemini text model.
type Explainer struct {
	c *Client
}

func NewExplainer(c *Client) *Explainer {
	return &Explainer{c: c}
}

func (e *Explainer) Explain(ctx context.Context, in port.ExplainInput) (string, error) {
	return call(ctx, e.c, "explain", func(ctx context.Context) (string, error) {
		resp, err := e.c.models.GenerateContent(ctx, e.c.cfg.TextModel, genai.Text(prompt.Explain(in)),
			&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.4), MaxOutputTokens: 120})
		if err != nil {
			return "", err
		}
		text := prompt.Sentence(resp.Text())
		if text == "" {
			return "", errors.New("empty explanation")
		}
		return text, nil
	})
}

var _ port.Explainer = (*Explainer)(nil)
