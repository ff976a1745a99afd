package translator

import (
	"context"
	"fmt"
	"strings"

	googletranslatefree "github.com/bas24/googletranslatefree"
	"golang.org/x/text/language"
)

// GoogleBackend uses the public Google Translate web endpoint.
// It takes ISO 639-1 codes, so FLORES-200 codes are mapped first.
type GoogleBackend struct {
	translate func(text, sourceLang, targetLang string) (string, error)
}

// NewGoogleBackend creates a GoogleBackend.
func NewGoogleBackend() *GoogleBackend {
	return &GoogleBackend{translate: googletranslatefree.Translate}
}

// Translate maps both codes and calls Google Translate.
func (b *GoogleBackend) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source, err := ISOCode(sourceCode)
	if err != nil {
		return "", err
	}
	target, err := ISOCode(targetCode)
	if err != nil {
		return "", err
	}

	translated, err := b.translate(text, source, target)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	return translated, nil
}

// macroLanguages maps FLORES-200 individual languages to the macrolanguage
// code Google Translate uses for them.
var macroLanguages = map[string]string{
	"khk": "mn", // Halh Mongolian
	"lvs": "lv", // Standard Latvian
	"nob": "no", // Norwegian Bokmål
	"npi": "ne", // Nepali
	"ory": "or", // Odia
	"pbt": "ps", // Southern Pashto
	"pes": "fa", // Western Persian
	"swh": "sw", // Swahili
	"uzn": "uz", // Northern Uzbek
	"ydd": "yi", // Eastern Yiddish
	"zsm": "ms", // Standard Malay
}

// ISOCode converts a FLORES-200 code such as "fra_Latn" to the short code
// Google Translate expects ("fr"). Individual languages become their
// macrolanguage and Chinese keeps its script as a region.
func ISOCode(floresCode string) (string, error) {
	lang, script, _ := strings.Cut(floresCode, "_")
	if macro, ok := macroLanguages[lang]; ok {
		return macro, nil
	}

	base, err := language.ParseBase(lang)
	if err != nil {
		return "", fmt.Errorf("unknown language code %q: %w", floresCode, err)
	}

	code := base.String()
	if code == "zh" {
		if script == "Hant" {
			return "zh-TW", nil
		}
		return "zh-CN", nil
	}

	return code, nil
}
