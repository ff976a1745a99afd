package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks variables the loader reads so host settings don't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ENVIRONMENT", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"TRANSLATOR_BACKEND", "TRANSLATOR_ENVIRONMENT", "TRANSLATOR_MAX_CHUNK_CHARS",
		"TRANSLATOR_HTTP_ENDPOINT", "TRANSLATOR_OPENAI_API_KEY", "TRANSLATOR_BREAKER_ENABLED",
	} {
		t.Setenv(name, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg := FromViper(New())

	if cfg.Backend != "lambda" {
		t.Errorf("Backend = %q, want lambda", cfg.Backend)
	}
	if cfg.MaxChunkChars != 512 {
		t.Errorf("MaxChunkChars = %d, want 512", cfg.MaxChunkChars)
	}
	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("HTTPTimeout = %v, want 60s", cfg.HTTPTimeout)
	}
	if cfg.BreakerEnabled {
		t.Error("BreakerEnabled should default to false")
	}
	if cfg.BreakerFailures != 5 || cfg.BreakerCooldown != 30*time.Second {
		t.Errorf("breaker = (%d, %v), want (5, 30s)", cfg.BreakerFailures, cfg.BreakerCooldown)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSLATOR_BACKEND", "HTTP")
	t.Setenv("TRANSLATOR_MAX_CHUNK_CHARS", "256")
	t.Setenv("TRANSLATOR_HTTP_ENDPOINT", "http://nllb.internal/translate")
	t.Setenv("TRANSLATOR_BREAKER_ENABLED", "true")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend != "http" {
		t.Errorf("Backend = %q, want http", cfg.Backend)
	}
	if cfg.MaxChunkChars != 256 {
		t.Errorf("MaxChunkChars = %d, want 256", cfg.MaxChunkChars)
	}
	if cfg.HTTPEndpoint != "http://nllb.internal/translate" {
		t.Errorf("HTTPEndpoint = %q", cfg.HTTPEndpoint)
	}
	if !cfg.BreakerEnabled {
		t.Error("BreakerEnabled = false, want true")
	}
	if cfg.Environment != "prod" {
		t.Errorf("Environment = %q, want prod", cfg.Environment)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q, want sk-test", cfg.OpenAIKey)
	}
}

func TestReadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "translator.yaml")
	content := `backend: google
max_chunk_chars: 300
catalog: /etc/translator/languages.yaml
log:
  level: debug
  format: json
breaker:
  enabled: true
  failures: 3
  cooldown: 10s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := New()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	cfg := FromViper(v)

	if cfg.Backend != "google" || cfg.MaxChunkChars != 300 {
		t.Errorf("cfg = (%q, %d), want (google, 300)", cfg.Backend, cfg.MaxChunkChars)
	}
	if cfg.Catalog != "/etc/translator/languages.yaml" {
		t.Errorf("Catalog = %q", cfg.Catalog)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log = (%q, %q), want (debug, json)", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.BreakerEnabled || cfg.BreakerFailures != 3 || cfg.BreakerCooldown != 10*time.Second {
		t.Errorf("breaker = (%v, %d, %v)", cfg.BreakerEnabled, cfg.BreakerFailures, cfg.BreakerCooldown)
	}
}

func TestReadFile_Missing(t *testing.T) {
	v := New()
	if err := ReadFile(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("ReadFile() should fail for an explicit missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"valid", Config{Backend: "openai", MaxChunkChars: 512}, false},
		{"zero chunk size uses default", Config{Backend: "google"}, false},
		{"unknown backend", Config{Backend: "babelfish"}, true},
		{"negative chunk size", Config{Backend: "http", MaxChunkChars: -1}, true},
		{"negative breaker failures", Config{Backend: "http", BreakerFailures: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.expectError {
				t.Errorf("Validate() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestModelFunction(t *testing.T) {
	cfg := Config{Environment: "staging"}
	if got := cfg.ModelFunction(); got != "pricofy-translator-nllb-staging" {
		t.Errorf("ModelFunction() = %q, want pricofy-translator-nllb-staging", got)
	}

	cfg.LambdaFunction = "custom-nllb"
	if got := cfg.ModelFunction(); got != "custom-nllb" {
		t.Errorf("ModelFunction() = %q, want custom-nllb", got)
	}
}

func TestTranslatorOptions(t *testing.T) {
	cfg := Config{
		Backend:         "lambda",
		Environment:     "prod",
		BreakerEnabled:  true,
		BreakerFailures: 4,
		BreakerCooldown: time.Minute,
	}

	opts := cfg.TranslatorOptions(nil)
	if opts.LambdaFunction != "pricofy-translator-nllb-prod" {
		t.Errorf("LambdaFunction = %q", opts.LambdaFunction)
	}
	if !opts.Breaker.Enabled || opts.Breaker.Failures != 4 || opts.Breaker.Cooldown != time.Minute {
		t.Errorf("Breaker = %+v", opts.Breaker)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("TRANSLATOR_DOTENV_PROBE", "")
	os.Unsetenv("TRANSLATOR_DOTENV_PROBE")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TRANSLATOR_DOTENV_PROBE=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("TRANSLATOR_DOTENV_PROBE"); got != "from-file" {
		t.Errorf("TRANSLATOR_DOTENV_PROBE = %q, want from-file", got)
	}
}
