package endpoint

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/core/logger"
)

// config holds per-endpoint settings applied through options.
type config[C handler.Context] struct {
	newContext   func(w http.ResponseWriter, r *http.Request) C
	errorHandler handler.ErrorHandler[C]
	logger       *slog.Logger
}

// Option configures the endpoint adapter.
type Option[C handler.Context] func(*config[C])

// WithContextFactory sets the factory that builds the custom context for
// each request. Required for any context type other than *Context.
func WithContextFactory[C handler.Context](fn func(w http.ResponseWriter, r *http.Request) C) Option[C] {
	return func(cfg *config[C]) {
		cfg.newContext = fn
	}
}

// WithErrorHandler replaces the default error-to-response translation.
func WithErrorHandler[C handler.Context](eh handler.ErrorHandler[C]) Option[C] {
	return func(cfg *config[C]) {
		if eh != nil {
			cfg.errorHandler = eh
		}
	}
}

// WithLogger sets the logger used for panics and render failures.
func WithLogger[C handler.Context](log *slog.Logger) Option[C] {
	return func(cfg *config[C]) {
		if log != nil {
			cfg.logger = log
		}
	}
}

// Handler adapts a composed handler to net/http so the host router invokes
// it exactly as any other http.HandlerFunc. For each request it builds the
// context, runs the handler chain, routes failures through the error
// handler, and renders the resulting response. Panics escaping the chain
// are recovered into a PanicError and handled the same way.
func Handler[C handler.Context](h handler.HandlerFunc[C], opts ...Option[C]) http.HandlerFunc {
	cfg := config[C]{
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.newContext == nil {
		cfg.newContext = func(w http.ResponseWriter, r *http.Request) C {
			// Only the default *Context type works without a factory.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, nil)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := cfg.newContext(ww, r)

		// Recover from panics to prevent server crashes
		defer func() {
			if p := recover(); p != nil {
				panicErr := &panicError{
					value: p,
					stack: debug.Stack(),
				}

				if ww.Written() {
					// Can't send an error response anymore, just log the panic
					cfg.logger.Error("panic after response written",
						"value", panicErr.value,
						"stack", string(panicErr.stack),
						"path", r.URL.Path,
						"method", r.Method,
						"status", ww.Status(),
					)
					return
				}

				render(&cfg, ctx, ww, r, cfg.errorHandler(ctx, panicErr))
			}
		}()

		resp, err := h(ctx)
		if err != nil {
			resp = cfg.errorHandler(ctx, err)
		}
		if resp == nil {
			resp = cfg.errorHandler(ctx, ErrNilResponse)
		}

		render(&cfg, ctx, ww, r, resp)
	}
}

// render executes the response and reports rendering failures. A response
// that fails midway may have already written headers, so the fallback 500
// is attempted only on an untouched writer.
func render[C handler.Context](cfg *config[C], ctx C, ww *responseWriter, r *http.Request, resp handler.Response) {
	if resp == nil {
		return
	}
	if err := resp(ww, r); err != nil {
		cfg.logger.Error("response render failed",
			logger.Error(err),
			logger.Path(r.URL.Path),
			logger.Method(r.Method),
		)
		if !ww.Written() {
			http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
