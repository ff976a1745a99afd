package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pricofy/text-translator/internal/catalog"
	"github.com/pricofy/text-translator/internal/translator"
)

type call struct {
	text, source, target string
}

// recorder is a translator double that records calls and replies per call index.
type recorder struct {
	calls []call
	reply func(i int, text string) (string, error)
}

func (r *recorder) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	r.calls = append(r.calls, call{text, sourceCode, targetCode})
	return r.reply(len(r.calls), text)
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Entry{
		{DisplayName: "French", Code: "fra_Latn"},
		{DisplayName: "German", Code: "deu_Latn"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslate_SingleChunk(t *testing.T) {
	rec := &recorder{reply: func(i int, text string) (string, error) {
		return "Bonjour le monde", nil
	}}
	o := New(newCatalog(t), rec, WithLogger(quietLogger()))

	res := o.Translate(context.Background(), "Hello world", "French")

	if res.Text != "Bonjour le monde" {
		t.Errorf("Translate() = %q, want %q", res.Text, "Bonjour le monde")
	}
	if !res.Available || res.LanguageCode != "fra_Latn" {
		t.Errorf("Translate() = %+v, want available fra_Latn", res)
	}
	if res.ChunksProcessed != 1 || res.ChunksFailed != 0 {
		t.Errorf("chunks = (%d, %d), want (1, 0)", res.ChunksProcessed, res.ChunksFailed)
	}

	if len(rec.calls) != 1 {
		t.Fatalf("translator called %d times, want 1", len(rec.calls))
	}
	want := call{"Hello world", "eng_Latn", "fra_Latn"}
	if rec.calls[0] != want {
		t.Errorf("translator called with %+v, want %+v", rec.calls[0], want)
	}
}

func TestTranslate_CaseInsensitiveLanguage(t *testing.T) {
	rec := &recorder{reply: func(i int, text string) (string, error) { return "Hallo", nil }}
	o := New(newCatalog(t), rec, WithLogger(quietLogger()))

	for _, name := range []string{"German", "german", "GERMAN"} {
		res := o.Translate(context.Background(), "Hello", name)
		if res.LanguageCode != "deu_Latn" || res.Text != "Hallo" {
			t.Errorf("Translate(%q) = %+v", name, res)
		}
	}
}

func TestTranslate_UnknownLanguage(t *testing.T) {
	rec := &recorder{reply: func(i int, text string) (string, error) {
		t.Fatal("translator must not be called for an unknown language")
		return "", nil
	}}
	o := New(newCatalog(t), rec, WithLogger(quietLogger()))

	res := o.Translate(context.Background(), "Hello world", "Klingon")

	if res.Text != UnavailableMessage {
		t.Errorf("Translate() = %q, want %q", res.Text, UnavailableMessage)
	}
	if res.Available {
		t.Error("Available = true, want false")
	}
	if len(rec.calls) != 0 {
		t.Errorf("translator called %d times, want 0", len(rec.calls))
	}
}

func TestTranslate_ChunkFailureIsInlined(t *testing.T) {
	rec := &recorder{reply: func(i int, text string) (string, error) {
		if i == 2 {
			return "", errors.New("model timeout")
		}
		return strings.ToUpper(text), nil
	}}
	// Three 5-character words, limit 5: one word per chunk
	o := New(newCatalog(t), rec, WithMaxChunkChars(5), WithLogger(quietLogger()))

	res := o.Translate(context.Background(), "alpha bravo delta", "French")

	want := "ALPHA Error during translation: model timeout DELTA"
	if res.Text != want {
		t.Errorf("Translate() = %q, want %q", res.Text, want)
	}
	if res.ChunksProcessed != 3 || res.ChunksFailed != 1 {
		t.Errorf("chunks = (%d, %d), want (3, 1)", res.ChunksProcessed, res.ChunksFailed)
	}
	if len(rec.calls) != 3 {
		t.Errorf("translator called %d times, want 3", len(rec.calls))
	}
}

func TestTranslate_PanicIsInlined(t *testing.T) {
	n := 0
	boom := translator.Func(func(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
		n++
		if n == 1 {
			panic("tokenizer exploded")
		}
		return "ok", nil
	})
	o := New(newCatalog(t), boom, WithMaxChunkChars(3), WithLogger(quietLogger()))

	res := o.Translate(context.Background(), "one two", "French")

	want := "Error during translation: panic: tokenizer exploded ok"
	if res.Text != want {
		t.Errorf("Translate() = %q, want %q", res.Text, want)
	}
}

func TestTranslate_ManyChunksInOrder(t *testing.T) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = "w"
	}
	text := strings.Join(words, " ")

	rec := &recorder{reply: func(i int, text string) (string, error) { return text, nil }}
	o := New(newCatalog(t), rec, WithLogger(quietLogger()))

	res := o.Translate(context.Background(), text, "French")

	if len(rec.calls) < 2 {
		t.Fatalf("translator called %d times, want at least 2", len(rec.calls))
	}
	for i, c := range rec.calls {
		if len([]rune(c.text)) > 512 {
			t.Errorf("chunk %d has %d characters, want <= 512", i, len([]rune(c.text)))
		}
	}
	if res.Text != text {
		t.Error("echo translation did not reproduce the input word sequence")
	}
	if res.ChunksProcessed != len(rec.calls) {
		t.Errorf("ChunksProcessed = %d, want %d", res.ChunksProcessed, len(rec.calls))
	}
}

func TestTranslate_EmptyText(t *testing.T) {
	rec := &recorder{reply: func(i int, text string) (string, error) { return text, nil }}
	o := New(newCatalog(t), rec, WithLogger(quietLogger()))

	res := o.Translate(context.Background(), "   ", "French")

	if res.Text != "" || res.ChunksProcessed != 0 || !res.Available {
		t.Errorf("Translate() = %+v, want empty available result", res)
	}
	if len(rec.calls) != 0 {
		t.Errorf("translator called %d times, want 0", len(rec.calls))
	}
}

func TestWithMaxChunkChars_IgnoresNonPositive(t *testing.T) {
	o := New(newCatalog(t), &recorder{}, WithMaxChunkChars(0), WithMaxChunkChars(-4))
	if o.maxChunkChars != 512 {
		t.Errorf("maxChunkChars = %d, want 512", o.maxChunkChars)
	}
}
