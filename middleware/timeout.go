package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/pkg/async"
)

// ErrRequestTimeout is propagated when the inner chain does not complete
// within the configured deadline.
var ErrRequestTimeout = errors.New("middleware: request timed out")

// TimeoutConfig configures the timeout middleware.
type TimeoutConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Timeout is the deadline for the inner chain (default: 30s)
	Timeout time.Duration
	// OnTimeout builds the response returned on timeout. If nil,
	// ErrRequestTimeout propagates for outer layers to translate.
	OnTimeout func(ctx handler.Context) handler.Response
}

// Timeout creates a middleware that races the inner chain against a timer.
// If the timer fires first, ErrRequestTimeout propagates outward; the inner
// work keeps running on its goroutine but its result is discarded. The inner
// chain must not touch the ResponseWriter directly, or an abandoned run
// could race a later write.
func Timeout[C handler.Context](d time.Duration) handler.Middleware[C] {
	return TimeoutWithConfig[C](TimeoutConfig{Timeout: d})
}

// TimeoutWithConfig creates a timeout middleware with custom configuration.
func TimeoutWithConfig[C handler.Context](cfg TimeoutConfig) handler.Middleware[C] {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (handler.Response, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			future := async.Run(ctx, func(context.Context) (handler.Response, error) {
				return next(ctx)
			})

			response, err := future.AwaitWithTimeout(cfg.Timeout)
			if errors.Is(err, async.ErrTimeout) {
				if cfg.OnTimeout != nil {
					return cfg.OnTimeout(ctx), nil
				}
				return nil, ErrRequestTimeout
			}
			return response, err
		}
	}
}
