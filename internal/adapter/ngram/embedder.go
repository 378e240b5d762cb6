// Package ngram is an offline embedder that hashes character trigrams into
// a fixed-size vector. It needs no network access and gives misspellings of
// a word a high cosine similarity to the word itself.
package ngram

import (
	"context"
	"hash/fnv"
	"strings"
)

const DefaultDim = 1024

type Embedder struct {
	dim int
}

func New(dim int) *Embedder {
	if dim <= 0 {
		dim = DefaultDim
	}
	return &Embedder{dim: dim}
}

// Embed never fails. Each word is padded with boundary markers before its
// trigrams are counted, so word order does not matter.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float32, e.dim)
	h := fnv.New32a()
	for _, w := range strings.Fields(strings.ToLower(text)) {
		r := []rune("#" + w + "#")
		for i := 0; i+3 <= len(r); i++ {
			h.Reset()
			_, _ = h.Write([]byte(string(r[i : i+3])))
			vec[h.Sum32()%uint32(e.dim)]++
		}
	}
	return vec, nil
}
