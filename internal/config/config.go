// Package config loads settings from flags, environment, config file and .env.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pricofy/text-translator/internal/chunker"
	"github.com/pricofy/text-translator/internal/translator"
)

// EnvPrefix prefixes every environment variable, e.g. TRANSLATOR_BACKEND.
const EnvPrefix = "TRANSLATOR"

// Config keys.
const (
	KeyBackend         = "backend"
	KeyCatalog         = "catalog"
	KeyMaxChunkChars   = "max_chunk_chars"
	KeyEnvironment     = "environment"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyLambdaFunction  = "lambda.function"
	KeyHTTPEndpoint    = "http.endpoint"
	KeyHTTPToken       = "http.token"
	KeyHTTPTimeout     = "http.timeout"
	KeyOpenAIKey       = "openai.api_key"
	KeyOpenAIModel     = "openai.model"
	KeyOpenAIBaseURL   = "openai.base_url"
	KeyGeminiKey       = "gemini.api_key"
	KeyGeminiModel     = "gemini.model"
	KeyBreakerEnabled  = "breaker.enabled"
	KeyBreakerFailures = "breaker.failures"
	KeyBreakerCooldown = "breaker.cooldown"
)

// Config holds all runtime settings.
type Config struct {
	Backend       string
	Catalog       string
	MaxChunkChars int
	Environment   string
	LogLevel      string
	LogFormat     string

	LambdaFunction string

	HTTPEndpoint string
	HTTPToken    string
	HTTPTimeout  time.Duration

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey   string
	GeminiModel string

	BreakerEnabled  bool
	BreakerFailures int
	BreakerCooldown time.Duration
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyBackend, translator.BackendLambda)
	v.SetDefault(KeyMaxChunkChars, chunker.DefaultMaxChunkChars)
	v.SetDefault(KeyEnvironment, "dev")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyHTTPTimeout, translator.DefaultHTTPTimeout)
	v.SetDefault(KeyGeminiModel, translator.DefaultGeminiModel)
	v.SetDefault(KeyBreakerFailures, 5)
	v.SetDefault(KeyBreakerCooldown, 30*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by the deployment and the provider SDKs
	_ = v.BindEnv(KeyEnvironment, EnvPrefix+"_ENVIRONMENT", "ENVIRONMENT")
	_ = v.BindEnv(KeyOpenAIKey, EnvPrefix+"_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv(KeyGeminiKey, EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY")

	return v
}

// ReadFile reads cfgFile, or $HOME/.text-translator.yaml (then ./) when
// cfgFile is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".text-translator")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}

	return nil
}

// FromViper reads a Config out of v.
func FromViper(v *viper.Viper) Config {
	return Config{
		Backend:       strings.ToLower(v.GetString(KeyBackend)),
		Catalog:       v.GetString(KeyCatalog),
		MaxChunkChars: v.GetInt(KeyMaxChunkChars),
		Environment:   v.GetString(KeyEnvironment),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),

		LambdaFunction: v.GetString(KeyLambdaFunction),

		HTTPEndpoint: v.GetString(KeyHTTPEndpoint),
		HTTPToken:    v.GetString(KeyHTTPToken),
		HTTPTimeout:  v.GetDuration(KeyHTTPTimeout),

		OpenAIKey:     v.GetString(KeyOpenAIKey),
		OpenAIModel:   v.GetString(KeyOpenAIModel),
		OpenAIBaseURL: v.GetString(KeyOpenAIBaseURL),

		GeminiKey:   v.GetString(KeyGeminiKey),
		GeminiModel: v.GetString(KeyGeminiModel),

		BreakerEnabled:  v.GetBool(KeyBreakerEnabled),
		BreakerFailures: v.GetInt(KeyBreakerFailures),
		BreakerCooldown: v.GetDuration(KeyBreakerCooldown),
	}
}

// Load builds a Config from the environment only. Used by the Lambda entry point.
func Load() (Config, error) {
	cfg := FromViper(New())
	return cfg, cfg.Validate()
}

// Validate checks the settings that don't depend on the chosen backend.
func (c Config) Validate() error {
	if !slices.Contains(translator.Backends(), c.Backend) {
		return fmt.Errorf("backend must be one of %s, got %q", strings.Join(translator.Backends(), ", "), c.Backend)
	}
	if c.MaxChunkChars < 0 {
		return fmt.Errorf("max_chunk_chars must not be negative")
	}
	if c.BreakerFailures < 0 {
		return fmt.Errorf("breaker.failures must not be negative")
	}
	return nil
}

// ModelFunction is the name of the model Lambda, derived from the environment
// when not set explicitly.
func (c Config) ModelFunction() string {
	if c.LambdaFunction != "" {
		return c.LambdaFunction
	}
	return fmt.Sprintf("pricofy-translator-nllb-%s", c.Environment)
}

// TranslatorOptions maps the config onto backend options.
func (c Config) TranslatorOptions(logger *slog.Logger) translator.Options {
	return translator.Options{
		Backend:        c.Backend,
		LambdaFunction: c.ModelFunction(),
		HTTPEndpoint:   c.HTTPEndpoint,
		HTTPToken:      c.HTTPToken,
		HTTPTimeout:    c.HTTPTimeout,
		OpenAIKey:      c.OpenAIKey,
		OpenAIModel:    c.OpenAIModel,
		OpenAIBaseURL:  c.OpenAIBaseURL,
		GeminiKey:      c.GeminiKey,
		GeminiModel:    c.GeminiModel,
		Breaker: translator.BreakerSettings{
			Enabled:  c.BreakerEnabled,
			Failures: uint32(c.BreakerFailures),
			Cooldown: c.BreakerCooldown,
			Logger:   logger,
		},
	}
}
