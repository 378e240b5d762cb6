package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"recruitads/internal/config/configs"
	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

// fakeModels answers with the queued results in order.
type fakeModels struct {
	embeds   []func() (*genai.EmbedContentResponse, error)
	texts    []func() (*genai.GenerateContentResponse, error)
	prompts  []string
	embedN   int
	generate int
}

func (f *fakeModels) EmbedContent(_ context.Context, _ string, _ []*genai.Content, _ *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error) {
	fn := f.embeds[min(f.embedN, len(f.embeds)-1)]
	f.embedN++
	return fn()
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.prompts = append(f.prompts, contents[0].Parts[0].Text)
	fn := f.texts[min(f.generate, len(f.texts)-1)]
	f.generate++
	return fn()
}

func textResponse(s string) func() (*genai.GenerateContentResponse, error) {
	return func() (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: s}}},
		}}}, nil
	}
}

func failure(code int) func() (*genai.GenerateContentResponse, error) {
	return func() (*genai.GenerateContentResponse, error) {
		return nil, &googleapi.Error{Code: code, Message: http.StatusText(code)}
	}
}

func testClient(m models, failures uint32) *Client {
	c := newClient(m, configs.Gemini{
		EmbeddingModel:  "text-embedding-004",
		TextModel:       "gemini-2.0-flash",
		MaxRetries:      2,
		RetryBackoff:    time.Millisecond,
		BreakerFailures: failures,
		BreakerTimeout:  time.Minute,
	}, nil)
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&googleapi.Error{Code: http.StatusServiceUnavailable}))
	assert.True(t, retryable(genai.APIError{Code: http.StatusTooManyRequests}))
	assert.False(t, retryable(&googleapi.Error{Code: http.StatusBadRequest}))
	assert.False(t, retryable(context.DeadlineExceeded))
	assert.False(t, retryable(errors.New("boom")))
}

func TestExplainRetriesTransientErrors(t *testing.T) {
	m := &fakeModels{texts: []func() (*genai.GenerateContentResponse, error){
		failure(http.StatusServiceUnavailable),
		textResponse("Facebook når sjuksköterskor på kvällstid.\nExtra rad"),
	}}
	cpc := 12.0
	got, err := NewExplainer(testClient(m, 5)).Explain(context.Background(), port.ExplainInput{
		Role: "Sjuksköterska", Platform: domain.PlatformFacebook, CTR: 2.5, CPC: &cpc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Facebook når sjuksköterskor på kvällstid.", got)
	assert.Equal(t, 2, m.generate)
	assert.Contains(t, m.prompts[0], "Sjuksköterska")
}

func TestExplainDoesNotRetryClientErrors(t *testing.T) {
	m := &fakeModels{texts: []func() (*genai.GenerateContentResponse, error){failure(http.StatusBadRequest)}}
	_, err := NewExplainer(testClient(m, 5)).Explain(context.Background(), port.ExplainInput{Role: "Kock"})
	require.Error(t, err)
	assert.Equal(t, 1, m.generate)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	m := &fakeModels{texts: []func() (*genai.GenerateContentResponse, error){failure(http.StatusInternalServerError)}}
	ex := NewExplainer(testClient(m, 2))
	for range 2 {
		_, err := ex.Explain(context.Background(), port.ExplainInput{Role: "Kock"})
		require.Error(t, err)
	}
	calls := m.generate
	_, err := ex.Explain(context.Background(), port.ExplainInput{Role: "Kock"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, calls, m.generate)
}

func TestEmbedderWrapsUnavailable(t *testing.T) {
	m := &fakeModels{embeds: []func() (*genai.EmbedContentResponse, error){
		func() (*genai.EmbedContentResponse, error) {
			return &genai.EmbedContentResponse{Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.6, 0.8}}}}, nil
		},
		func() (*genai.EmbedContentResponse, error) {
			return &genai.EmbedContentResponse{}, nil
		},
	}}
	e := NewEmbedder(testClient(m, 5))

	vec, err := e.Embed(context.Background(), "kock")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.6, 0.8}, vec)

	_, err = e.Embed(context.Background(), "kock")
	assert.ErrorIs(t, err, port.ErrEmbeddingUnavailable)
}

func TestClassifierMapsLabels(t *testing.T) {
	m := &fakeModels{texts: []func() (*genai.GenerateContentResponse, error){
		textResponse("Restaurang & Café"),
		textResponse("Rymdindustri"),
	}}
	cl := NewClassifier(testClient(m, 5), []string{"Sjukvård", "Restaurang & Café"})

	got, err := cl.Classify(context.Background(), "Kock", "Espresso House")
	require.NoError(t, err)
	assert.Equal(t, "Restaurang & Café", got)
	assert.Contains(t, m.prompts[0], "Företag: Espresso House")

	got, err = cl.Classify(context.Background(), "Astronaut", "")
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownIndustry, got)
}
