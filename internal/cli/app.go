package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pricofy/text-translator/internal/catalog"
	"github.com/pricofy/text-translator/internal/config"
	"github.com/pricofy/text-translator/internal/orchestrator"
	"github.com/pricofy/text-translator/internal/translator"
)

// EmptyInputMessage is shown instead of translating blank input.
const EmptyInputMessage = "Please enter some text to translate."

// quitCommand ends an interactive session.
const quitCommand = ":q"

// App holds the dependencies built once per process.
type App struct {
	orchestrator *orchestrator.Orchestrator
	out          io.Writer
	errOut       io.Writer
}

// NewApp loads the language table and the configured backend.
func NewApp(ctx context.Context, cfg config.Config, logger *slog.Logger, out, errOut io.Writer) (*App, error) {
	langs, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	backend, err := translator.New(ctx, cfg.TranslatorOptions(logger))
	if err != nil {
		return nil, err
	}

	return NewAppWithTranslator(langs, backend, cfg.MaxChunkChars, logger, out, errOut), nil
}

// NewAppWithTranslator builds an App around an existing catalog and backend.
func NewAppWithTranslator(langs *catalog.Catalog, t translator.Translator, maxChunkChars int, logger *slog.Logger, out, errOut io.Writer) *App {
	return &App{
		orchestrator: orchestrator.New(langs, t,
			orchestrator.WithMaxChunkChars(maxChunkChars),
			orchestrator.WithLogger(logger)),
		out:    out,
		errOut: errOut,
	}
}

// ListLanguages prints every display name, one per line.
func ListLanguages(w io.Writer, langs *catalog.Catalog) {
	for _, name := range langs.Names() {
		fmt.Fprintln(w, name)
	}
}

// Translate translates text and prints the result verbatim, placeholders included.
func (a *App) Translate(ctx context.Context, text, language string) {
	if strings.TrimSpace(text) == "" {
		printWarning(a.errOut, EmptyInputMessage)
		return
	}

	result := a.orchestrator.Translate(ctx, text, language)
	fmt.Fprintln(a.out, result.Text)

	switch {
	case !result.Available:
		printInfo(a.errOut, "Run 'translate languages' to see the available languages")
	case result.ChunksFailed > 0:
		printWarning(a.errOut, fmt.Sprintf("%d of %d chunks failed to translate", result.ChunksFailed, result.ChunksProcessed))
	default:
		printSuccess(a.errOut, fmt.Sprintf("Translated %d chunk(s) into %s (%s)", result.ChunksProcessed, language, result.LanguageCode))
	}
}

// Interactive reads one text per line from in and translates each until EOF
// or a line containing only ":q".
func (a *App) Interactive(ctx context.Context, in io.Reader, language string) error {
	printInfo(a.errOut, fmt.Sprintf("Translating into %s. Enter text, or %s to quit.", language, quitCommand))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(a.errOut, "> ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == quitCommand {
			return nil
		}
		a.Translate(ctx, line, language)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
