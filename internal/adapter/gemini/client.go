package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"recruitads/internal/config/configs"
)

// models is the part of genai.Models the adapters call.
type models interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Gemini API with retries and a circuit breaker shared by
// the embedder, explainer and classifier built on it.
type Client struct {
	models  models
	breaker *gobreaker.CircuitBreaker[any]
	cfg     configs.Gemini
	log     *slog.Logger
	sleep   func(context.Context, time.Duration) error
}

// New connects to the Gemini API with cfg.APIKey.
func New(ctx context.Context, cfg configs.Gemini, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: missing API key")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newClient(gc.Models, cfg, log), nil
}

func newClient(m models, cfg configs.Gemini, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c := &Client{models: m, cfg: cfg, log: log, sleep: sleepCtx}
	c.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "gemini",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return c
}

// call runs fn behind the breaker, retrying transient failures with
// exponential backoff.
func call[T any](ctx context.Context, c *Client, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	res, err := c.breaker.Execute(func() (any, error) {
		var lastErr error
		for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
			if attempt > 0 {
				backoff := c.cfg.RetryBackoff << (attempt - 1)
				c.log.Debug("retrying gemini call",
					slog.String("op", op),
					slog.Int("attempt", attempt),
					slog.Any("error", lastErr))
				if err := c.sleep(ctx, backoff); err != nil {
					return nil, err
				}
			}
			v, err := fn(ctx)
			if err == nil {
				return v, nil
			}
			lastErr = err
			if !retryable(err) {
				break
			}
		}
		return nil, lastErr
	})
	if err != nil {
		return zero, fmt.Errorf("gemini %s: %w", op, err)
	}
	return res.(T), nil
}

// retryable reports whether err is a network failure or a rate limit or
// server error from the API.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	code := 0
	var apiErr *googleapi.Error
	var genaiErr genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &genaiErr):
		code = genaiErr.Code
	}
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
