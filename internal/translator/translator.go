// Package translator defines the translation model capability and its backends.
//
// A backend translates one piece of text between two FLORES-200 language
// codes. Backends are built once at startup and reused for every request.
package translator

import "context"

// SourceCode is the FLORES-200 code of the input language.
const SourceCode = "eng_Latn"

// Translator translates text from sourceCode to targetCode.
type Translator interface {
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)
}

// Func adapts a plain function to the Translator interface.
type Func func(ctx context.Context, text, sourceCode, targetCode string) (string, error)

// Translate calls f.
func (f Func) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	return f(ctx, text, sourceCode, targetCode)
}
