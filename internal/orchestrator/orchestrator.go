// Package orchestrator translates a text into a named language chunk by chunk.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pricofy/text-translator/internal/chunker"
	"github.com/pricofy/text-translator/internal/translator"
)

// UnavailableMessage is returned when the destination language is not in the catalog.
const UnavailableMessage = "Selected language is not available in the translation model."

// ErrorPrefix starts the placeholder that replaces a chunk whose translation failed.
const ErrorPrefix = "Error during translation: "

// Catalog resolves display names to model language codes.
type Catalog interface {
	LookupCode(displayName string) (string, bool)
}

// Result is the outcome of a Translate call.
type Result struct {
	// Text is the joined translation, or UnavailableMessage.
	Text         string
	LanguageCode string
	// Available is false when the destination language was not found.
	Available       bool
	ChunksProcessed int
	ChunksFailed    int
}

// Orchestrator resolves the destination language, segments the input and
// sends each chunk to the translator in order.
type Orchestrator struct {
	catalog       Catalog
	translator    translator.Translator
	maxChunkChars int
	logger        *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMaxChunkChars overrides chunker.DefaultMaxChunkChars.
func WithMaxChunkChars(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxChunkChars = n
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Orchestrator.
func New(catalog Catalog, t translator.Translator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:       catalog,
		translator:    t,
		maxChunkChars: chunker.DefaultMaxChunkChars,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Translate translates English text into destinationLanguage.
// It never fails: an unknown language yields UnavailableMessage, and a chunk
// that can't be translated is replaced by an ErrorPrefix placeholder while the
// remaining chunks are still translated. Chunk results are joined with single spaces.
func (o *Orchestrator) Translate(ctx context.Context, text, destinationLanguage string) Result {
	start := time.Now()
	logger := o.logger.With("request_id", uuid.NewString(), "language", destinationLanguage)

	code, ok := o.catalog.LookupCode(destinationLanguage)
	if !ok {
		logger.Info("destination language not available")
		return Result{Text: UnavailableMessage}
	}

	chunks := chunker.Segment(text, o.maxChunkChars)
	logger.Debug("segmented input", "code", code, "chunks", len(chunks), "max_chunk_chars", o.maxChunkChars)

	translations := make([]string, 0, len(chunks))
	failed := 0
	for i, chunk := range chunks {
		translated, err := o.translateChunk(ctx, chunk, code)
		if err != nil {
			failed++
			logger.Warn("chunk translation failed",
				"chunk", i+1, "of", len(chunks), "chars", chunker.Length(chunk), "error", err)
			translated = ErrorPrefix + err.Error()
		}
		translations = append(translations, translated)
	}

	logger.Info("translation finished",
		"code", code,
		"chunks", len(chunks),
		"failed", failed,
		"duration", time.Since(start))

	return Result{
		Text:            strings.Join(translations, " "),
		LanguageCode:    code,
		Available:       true,
		ChunksProcessed: len(chunks),
		ChunksFailed:    failed,
	}
}

// translateChunk calls the translator and turns a panic into an error.
func (o *Orchestrator) translateChunk(ctx context.Context, chunk, code string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return o.translator.Translate(ctx, chunk, translator.SourceCode, code)
}
