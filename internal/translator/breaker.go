package translator

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures the fail-fast wrapper around a backend.
type BreakerSettings struct {
	Enabled bool
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
	// Cooldown is how long the breaker stays open before probing again.
	Cooldown time.Duration
	Logger   *slog.Logger
}

type breakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps next so that after a run of consecutive failures further
// calls fail immediately with gobreaker.ErrOpenState until the cooldown ends.
// Calls are never retried.
func WithBreaker(name string, next Translator, s BreakerSettings) Translator {
	if s.Failures == 0 {
		s.Failures = 5
	}
	if s.Cooldown <= 0 {
		s.Cooldown = 30 * time.Second
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.Failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translator breaker state changed",
				"backend", name, "from", from.String(), "to", to.String())
		},
	})

	return &breakerTranslator{next: next, cb: cb}
}

func (b *breakerTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, sourceCode, targetCode)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
