package translator

import (
	"context"
	"fmt"
	"time"
)

// Backend names accepted by New.
const (
	BackendLambda = "lambda"
	BackendHTTP   = "http"
	BackendGoogle = "google"
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	LambdaFunction string

	HTTPEndpoint string
	HTTPToken    string
	HTTPTimeout  time.Duration

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey   string
	GeminiModel string

	Breaker BreakerSettings
}

// Backends returns the names accepted by New.
func Backends() []string {
	return []string{BackendLambda, BackendHTTP, BackendGoogle, BackendOpenAI, BackendGemini}
}

// New builds the configured backend, wrapped in a breaker when enabled.
func New(ctx context.Context, opts Options) (Translator, error) {
	var (
		t   Translator
		err error
	)

	switch opts.Backend {
	case BackendLambda:
		t, err = NewLambdaBackend(ctx, opts.LambdaFunction)
	case BackendHTTP:
		t, err = NewHTTPBackend(opts.HTTPEndpoint, opts.HTTPToken, opts.HTTPTimeout)
	case BackendGoogle:
		t = NewGoogleBackend()
	case BackendOpenAI:
		t, err = NewOpenAIBackend(opts.OpenAIKey, opts.OpenAIModel, opts.OpenAIBaseURL)
	case BackendGemini:
		t, err = NewGeminiBackend(ctx, opts.GeminiKey, opts.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported backend: %q", opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", opts.Backend, err)
	}

	if opts.Breaker.Enabled {
		t = WithBreaker(opts.Backend, t, opts.Breaker)
	}

	return t, nil
}
