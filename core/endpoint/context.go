package endpoint

import (
	"context"
	"net/http"
	"time"
)

// Context is the default context implementation. It delegates all
// context.Context methods to the request's context, so values attached
// with SetValue travel into everything the request context reaches.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

// NewContext creates a context for one request. The params map carries
// router-supplied path parameters; it may be nil, in which case Param
// falls back to the request's PathValue.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{
		w:      w,
		r:      r,
		params: params,
	}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with key on the request's context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value on the request's context. The value can be read
// back through Value, and through any context.Context derived from this
// request from here on.
func (c *Context) SetValue(key, val any) {
	ctx := context.WithValue(c.r.Context(), key, val)
	c.r = c.r.WithContext(ctx)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the URL parameter for the given key. Keys not
// present in the params map are looked up via the request's PathValue, so
// the default context works with net/http pattern routing out of the box.
func (c *Context) Param(key string) string {
	if v, ok := c.params[key]; ok {
		return v
	}
	return c.r.PathValue(key)
}
