package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/core/logger"
)

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Logger receives the panic value and stack trace (default: discarded)
	Logger *slog.Logger
}

// Recover creates a middleware that converts panics from inner layers into
// propagated errors, so outer middleware can observe and translate them
// like any other failure instead of the panic unwinding past the chain.
func Recover[C handler.Context]() handler.Middleware[C] {
	return RecoverWithConfig[C](RecoverConfig{})
}

// RecoverWithConfig creates a recovery middleware with custom configuration.
func RecoverWithConfig[C handler.Context](cfg RecoverConfig) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (response handler.Response, err error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			defer func() {
				if p := recover(); p != nil {
					if cfg.Logger != nil {
						cfg.Logger.ErrorContext(ctx, "panic recovered",
							slog.Any("value", p),
							logger.Stack(debug.Stack()),
							logger.Path(ctx.Request().URL.Path),
						)
					}
					response = nil
					if perr, ok := p.(error); ok {
						err = fmt.Errorf("panic recovered: %w", perr)
					} else {
						err = fmt.Errorf("panic recovered: %v", p)
					}
				}
			}()

			return next(ctx)
		}
	}
}
