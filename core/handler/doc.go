// Package handler defines the behavioral types of the wrapkit middleware
// toolkit: type-safe request handlers, the middleware contract, and the
// context interface that carries a request through the composition.
//
// # Core Types
//
// A handler answers one request and returns the response to render plus an
// error for failures:
//
//	type HandlerFunc[C Context] func(ctx C) (Response, error)
//
// A middleware upgrades a handler into another handler with the same
// external signature, so composed and bare handlers are interchangeable:
//
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// MiddlewareFunc is the continuation-passing form consumed by compose.Wrap;
// it receives the rest of the chain as next:
//
//	type MiddlewareFunc[C Context] func(next HandlerFunc[C], ctx C) (Response, error)
//
// # Control Flow
//
// Control flows from the outermost middleware inward through explicit next
// calls; results and errors flow back outward through the same call stack
// in reverse order. A middleware may:
//
//   - return a response without calling next, skipping every inner layer
//     and the terminal handler (short-circuit, e.g. auth rejection);
//   - call next(ctx) to delegate with the current context, or with a
//     replacement context to mutate the request before continuing;
//   - inspect the error returned by next to translate a failure into a
//     response, retry, or pass it along unchanged.
//
// # Context
//
// The Context interface extends context.Context with request access, router
// parameters, and SetValue for attaching request-scoped data. Middleware
// constructed once at startup holds no per-request state; everything
// request-scoped lives on the context and dies with the request.
package handler
