package middleware_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit/core/endpoint"
	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/core/response"
	"github.com/dmitrymomot/wrapkit/middleware"
)

func TestLoggingSuccessfulRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.LoggingWithLogger[*endpoint.Context](logger)(func(ctx *endpoint.Context) (handler.Response, error) {
		return response.NoContent(), nil
	})

	_, err := h(newTestContext(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/test")
	assert.Contains(t, out, "duration=")
}

func TestLoggingFailedRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.LoggingWithLogger[*endpoint.Context](logger)(func(ctx *endpoint.Context) (handler.Response, error) {
		return nil, assert.AnError
	})

	_, err := h(newTestContext(t))
	assert.ErrorIs(t, err, assert.AnError, "logging must re-return the failure unchanged")

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "level=ERROR")
}

func TestLoggingSlowRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mw := middleware.LoggingWithConfig[*endpoint.Context](middleware.LoggingConfig{
		Logger:               logger,
		SlowRequestThreshold: time.Nanosecond,
	})

	h := mw(func(ctx *endpoint.Context) (handler.Response, error) {
		time.Sleep(time.Millisecond)
		return response.NoContent(), nil
	})

	_, err := h(newTestContext(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "slow request")
}

func TestLoggingComponentAttribute(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mw := middleware.LoggingWithConfig[*endpoint.Context](middleware.LoggingConfig{
		Logger:    logger,
		Component: "api",
	})

	h := mw(func(ctx *endpoint.Context) (handler.Response, error) {
		return response.NoContent(), nil
	})

	_, err := h(newTestContext(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "component=api")
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mw := middleware.LoggingWithConfig[*endpoint.Context](middleware.LoggingConfig{
		Logger: logger,
		Skip:   func(ctx handler.Context) bool { return true },
	})

	h := mw(func(ctx *endpoint.Context) (handler.Response, error) {
		return response.NoContent(), nil
	})

	_, err := h(newTestContext(t))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
