package gemini

import (
	"context"

	"google.golang.org/genai"

	"recruitads/internal/adapter/prompt"
	"recruitads/internal/core/port"
)

// Classifier implements port.IndustryClassifier by asking a Gemini text
// model to choose among known industry labels.
type Classifier struct {
	c      *Client
	labels []string
}

func NewClassifier(c *Client, labels []string) *Classifier {
	return &Classifier{c: c, labels: labels}
}

func (cl *Classifier) Classify(ctx context.Context, role, company string) (string, error) {
	return call(ctx, cl.c, "classify", func(ctx context.Context) (string, error) {
		resp, err := cl.c.models.GenerateContent(ctx, cl.c.cfg.TextModel,
			genai.Text(prompt.Classify(role, company, cl.labels)),
			&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0), MaxOutputTokens: 20})
		if err != nil {
			return "", err
		}
		return prompt.MatchLabel(resp.Text(), cl.labels), nil
	})
}

var _ port.IndustryClassifier = (*Classifier)(nil)
