// Package main is the entry point for the translator Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/pricofy/text-translator/internal/catalog"
	"github.com/pricofy/text-translator/internal/config"
	"github.com/pricofy/text-translator/internal/domain"
	"github.com/pricofy/text-translator/internal/handler"
	"github.com/pricofy/text-translator/internal/logging"
	"github.com/pricofy/text-translator/internal/orchestrator"
	"github.com/pricofy/text-translator/internal/translator"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, logging.FormatJSON)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Catalog and model backend live for the whole instance lifetime
	langs, err := catalog.Open(cfg.Catalog)
	if err != nil {
		logger.Error("failed to load language table", "error", err)
		os.Exit(1)
	}

	backend, err := translator.New(ctx, cfg.TranslatorOptions(logger))
	if err != nil {
		logger.Error("failed to create translator", "error", err)
		os.Exit(1)
	}

	orch := orchestrator.New(langs, backend,
		orchestrator.WithMaxChunkChars(cfg.MaxChunkChars),
		orchestrator.WithLogger(logger))

	app := &app{
		handler: handler.New(orch, langs.Names()),
		warmer:  newWarmer(os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), logger),
		logger:  logger,
	}

	logger.Info("translator ready",
		"backend", cfg.Backend, "languages", langs.Len(), "environment", cfg.Environment)

	lambda.Start(app.handleRequest)
}

type app struct {
	handler *handler.Handler
	warmer  *warmer
	logger  *slog.Logger
}

func (a *app) handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return a.warmer.HandleWarmup(ctx, warmup)
	}

	// Parse the request and delegate to the handler
	var req domain.Request
	if err := json.Unmarshal(event, &req); err != nil {
		a.logger.Error("malformed event", "error", err)
		return nil, err
	}

	return a.handler.Handle(ctx, req)
}
