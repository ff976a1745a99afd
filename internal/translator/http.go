package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pricofy/text-translator/internal/domain"
)

// DefaultHTTPTimeout bounds a single inference call.
const DefaultHTTPTimeout = 60 * time.Second

// HTTPBackend posts each chunk to a Hugging Face style inference endpoint
// serving a translation pipeline.
type HTTPBackend struct {
	endpoint string
	token    string
	http     *resty.Client
}

// NewHTTPBackend creates an HTTPBackend. token may be empty for unauthenticated endpoints.
func NewHTTPBackend(endpoint, token string, timeout time.Duration) (*HTTPBackend, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("inference endpoint is required")
	}
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return &HTTPBackend{
		endpoint: endpoint,
		token:    token,
		http:     resty.New().SetTimeout(timeout),
	}, nil
}

// Translate posts the chunk and returns the first translation in the response.
func (b *HTTPBackend) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	var out []domain.InferenceResult

	r := b.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(domain.InferenceRequest{
			Inputs: text,
			Parameters: domain.InferenceParameters{
				SourceLang: sourceCode,
				TargetLang: targetCode,
			},
		}).
		SetResult(&out)
	if b.token != "" {
		r.SetAuthToken(b.token)
	}

	resp, err := r.Post(b.endpoint)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("inference endpoint: %s; body: %s", resp.Status(), resp.String())
	}
	if len(out) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return out[0].TranslationText, nil
}
