package middleware

import (
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/dmitrymomot/wrapkit/core/handler"
)

// RetryConfig configures the retry middleware.
type RetryConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Attempts is the total number of tries including the first one (default: 3)
	Attempts uint
	// Delay between attempts, grows with exponential backoff (default: 100ms)
	Delay time.Duration
	// MaxDelay caps the backoff between attempts (default: 2s)
	MaxDelay time.Duration
	// RetryIf decides whether a failure is worth retrying (default: all errors)
	RetryIf func(err error) bool
}

// Retry creates a middleware that re-invokes the inner chain when it fails,
// up to the given number of attempts. Only the last error is propagated.
//
// Re-invocation re-runs every inner layer and the terminal handler, so it
// belongs outside anything that must run once per request.
func Retry[C handler.Context](attempts uint) handler.Middleware[C] {
	return RetryWithConfig[C](RetryConfig{Attempts: attempts})
}

// RetryWithConfig creates a retry middleware with custom configuration.
func RetryWithConfig[C handler.Context](cfg RetryConfig) handler.Middleware[C] {
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 100 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 2 * time.Second
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (handler.Response, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			opts := []retry.Option{
				retry.Attempts(cfg.Attempts),
				retry.Delay(cfg.Delay),
				retry.MaxDelay(cfg.MaxDelay),
				retry.Context(ctx),
				retry.LastErrorOnly(true),
			}
			if cfg.RetryIf != nil {
				opts = append(opts, retry.RetryIf(cfg.RetryIf))
			}

			return retry.DoWithData(func() (handler.Response, error) {
				return next(ctx)
			}, opts...)
		}
	}
}
