package handler

import "net/http"

// Response renders the outcome of a request. It sets headers, status code,
// and writes the response body. Rendering errors are reported to whoever
// executes the response, not back into the middleware chain.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe request handler with custom context support.
// The error return carries failures outward through every middleware that
// delegated to this handler; a middleware may inspect the error at its call
// site and translate it into a response or pass it along unchanged.
type HandlerFunc[C Context] func(ctx C) (Response, error)

// Middleware upgrades a handler into another handler with the same
// signature, prepending cross-cutting behavior. Applying a middleware only
// builds closures; no middleware logic runs until the resulting handler is
// invoked with a concrete request.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// MiddlewareFunc is the user-facing middleware form consumed by compose.Wrap.
// It receives the continuation of the chain together with the request
// context. It may return a response without calling next (short-circuit),
// call next once to delegate inward, or call it again to re-run the inner
// layers; the library does not enforce exactly-once delegation.
type MiddlewareFunc[C Context] func(next HandlerFunc[C], ctx C) (Response, error)

// ErrorHandler translates a failure that escaped the middleware chain into
// a response at the outer boundary.
type ErrorHandler[C Context] func(ctx C, err error) Response
