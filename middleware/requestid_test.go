package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit/core/endpoint"
	"github.com/dmitrymomot/wrapkit/core/handler"
	"github.com/dmitrymomot/wrapkit/core/response"
	"github.com/dmitrymomot/wrapkit/middleware"
)

func newTestContext(t *testing.T) *endpoint.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	return endpoint.NewContext(httptest.NewRecorder(), req, nil)
}

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	var capturedID string
	h := middleware.RequestID[*endpoint.Context]()(func(ctx *endpoint.Context) (handler.Response, error) {
		id, ok := middleware.GetRequestID(ctx)
		assert.True(t, ok, "request ID should be present in context")
		capturedID = id
		return response.NoContent(), nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	ctx := endpoint.NewContext(w, req, nil)

	resp, err := h(ctx)
	require.NoError(t, err)
	require.NoError(t, resp(w, ctx.Request()))

	assert.NotEmpty(t, capturedID, "request ID should be generated")
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"), "request ID should be in response header")

	// Validate UUID format (default generator)
	assert.Len(t, capturedID, 36, "default ID should be UUID v4 format")
	assert.Contains(t, capturedID, "-", "UUID should contain hyphens")
}

func TestRequestIDCustomGenerator(t *testing.T) {
	t.Parallel()

	customID := "custom-123-456"
	mw := middleware.RequestIDWithConfig[*endpoint.Context](middleware.RequestIDConfig{
		Generator:  func() string { return customID },
		HeaderName: "X-Trace-ID",
	})

	h := mw(func(ctx *endpoint.Context) (handler.Response, error) {
		id, ok := middleware.GetRequestID(ctx)
		assert.True(t, ok)
		assert.Equal(t, customID, id)
		return response.NoContent(), nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	ctx := endpoint.NewContext(w, req, nil)

	resp, err := h(ctx)
	require.NoError(t, err)
	require.NoError(t, resp(w, ctx.Request()))
	assert.Equal(t, customID, w.Header().Get("X-Trace-ID"))
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	mw := middleware.RequestIDWithConfig[*endpoint.Context](middleware.RequestIDConfig{
		UseExisting: true,
	})

	h := mw(func(ctx *endpoint.Context) (handler.Response, error) {
		id, _ := middleware.GetRequestID(ctx)
		assert.Equal(t, "incoming-id", id)
		return response.NoContent(), nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "incoming-id")
	ctx := endpoint.NewContext(w, req, nil)

	_, err := h(ctx)
	require.NoError(t, err)
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	mw := middleware.RequestIDWithConfig[*endpoint.Context](middleware.RequestIDConfig{
		Skip: func(ctx handler.Context) bool { return true },
	})

	h := mw(func(ctx *endpoint.Context) (handler.Response, error) {
		_, ok := middleware.GetRequestID(ctx)
		assert.False(t, ok, "skipped middleware must not store an ID")
		return response.NoContent(), nil
	})

	_, err := h(newTestContext(t))
	require.NoError(t, err)
}

func TestRequestIDErrorPassesThrough(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID[*endpoint.Context]()(func(ctx *endpoint.Context) (handler.Response, error) {
		return nil, assert.AnError
	})

	resp, err := h(newTestContext(t))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resp)
}
