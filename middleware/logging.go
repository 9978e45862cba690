package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
// It logs method, path and duration at info level, failures at error level.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{
		Logger: log,
	})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. Errors returned by inner layers are logged and re-returned
// unchanged, so outer middleware and the endpoint boundary still observe
// them.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	log := cfg.Logger
	if cfg.Component != "" {
		log = log.With(logger.Component(cfg.Component))
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (handler.Response, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			start := time.Now()

			response, err := next(ctx)

			duration := time.Since(start)
			attrs := []any{
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.Duration(duration),
			}

			switch {
			case err != nil:
				log.ErrorContext(ctx, "request failed", append(attrs, logger.Error(err))...)
			case duration >= cfg.SlowRequestThreshold:
				log.WarnContext(ctx, "slow request", attrs...)
			default:
				log.Log(ctx, cfg.LogLevel, "request completed", attrs...)
			}

			return response, err
		}
	}
}
