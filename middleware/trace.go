package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/core/scope"
)

// TraceConfig configures the trace middleware.
type TraceConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Generator creates new trace IDs (default: UUID v4)
	Generator func() string
}

// Trace creates a trace ID middleware with default configuration.
//
// Unlike RequestID, which stores the identifier as a plain context value,
// Trace publishes it through a scope: any code handed the request context,
// including goroutines spawned during handling, can read the ID back via
// the returned handle without it being threaded as a parameter.
//
//	traceMW, traceID := middleware.Trace[*endpoint.Context]()
//	h := traceMW(terminal)
//	// later, anywhere in the request's call graph:
//	if id, ok := traceID.Current(ctx); ok { ... }
func Trace[C handler.Context]() (handler.Middleware[C], *scope.Scope[C, string]) {
	return TraceWithConfig[C](TraceConfig{})
}

// TraceWithConfig creates a trace ID middleware with custom configuration.
func TraceWithConfig[C handler.Context](cfg TraceConfig) (handler.Middleware[C], *scope.Scope[C, string]) {
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	s := scope.New(func(ctx C) string {
		return cfg.Generator()
	})

	mw := s.Middleware()
	if cfg.Skip == nil {
		return mw, s
	}

	skipped := func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		scoped := mw(next)
		return func(ctx C) (handler.Response, error) {
			if cfg.Skip(ctx) {
				return next(ctx)
			}
			return scoped(ctx)
		}
	}
	return skipped, s
}
