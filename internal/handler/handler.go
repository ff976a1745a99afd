// Package handler provides the Lambda handler for the translator.
package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/pricofy/text-translator/internal/domain"
	"github.com/pricofy/text-translator/internal/orchestrator"
)

// Translator is the orchestrator operation the handler depends on.
type Translator interface {
	Translate(ctx context.Context, text, destinationLanguage string) orchestrator.Result
}

// Handler serves translate and languages requests.
// It is built once per cold start and reused across invocations.
type Handler struct {
	translator Translator
	languages  []string
}

// New creates a Handler. languages is the list returned by the languages action.
func New(t Translator, languages []string) *Handler {
	return &Handler{
		translator: t,
		languages:  languages,
	}
}

// Handle processes a request.
// Validation failures and unknown languages are reported in Response.Error;
// the returned error is always nil so the caller sees a normal payload.
func (h *Handler) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if err := validateRequest(req); err != nil {
		return &domain.Response{Error: err.Error()}, nil
	}

	if req.Action == domain.ActionLanguages {
		return &domain.Response{Languages: h.languages}, nil
	}

	result := h.translator.Translate(ctx, req.Text, req.DestinationLanguage)
	if !result.Available {
		return &domain.Response{Error: result.Text}, nil
	}

	return &domain.Response{
		Translation:     result.Text,
		LanguageCode:    result.LanguageCode,
		ChunksProcessed: result.ChunksProcessed,
		ChunksFailed:    result.ChunksFailed,
	}, nil
}

// validateRequest checks the request is valid.
func validateRequest(req domain.Request) error {
	switch req.Action {
	case "", domain.ActionTranslate:
	case domain.ActionLanguages:
		return nil
	default:
		return fmt.Errorf("unknown action: %s", req.Action)
	}

	if req.DestinationLanguage == "" {
		return fmt.Errorf("destinationLanguage is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}
