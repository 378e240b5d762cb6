package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"recruitads/internal/core/port"
)

// Embedder implements port.Embedder with the Gemini embedding model.
type Embedder struct {
	c *Client
}

func NewEmbedder(c *Client) *Embedder {
	return &Embedder{c: c}
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := call(ctx, e.c, "embed", func(ctx context.Context) ([]float32, error) {
		resp, err := e.c.models.EmbedContent(ctx, e.c.cfg.EmbeddingModel, genai.Text(text),
			&genai.EmbedContentConfig{TaskType: "SEMANTIC_SIMILARITY"})
		if err != nil {
			return nil, err
		}
		if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
			return nil, errors.New("empty embedding")
		}
		return resp.Embeddings[0].Values, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrEmbeddingUnavailable, err)
	}
	return vec, nil
}

var _ port.Embedder = (*Embedder)(nil)
