// Package middleware provides ready-made middleware built on the wrapkit
// composition algebra: request ID generation, scope-based trace IDs,
// structured request logging, retries, timeouts, and panic recovery.
//
// All middleware follow a consistent pattern:
//   - generic over the handler.Context type used by the application
//   - X() constructors with sensible defaults
//   - XWithConfig(cfg) constructors for customization
//   - a Skip function to bypass the middleware per request
//   - GetX helpers for values stored in the request context
//
// # Composition
//
// Middleware are ordinary handler.Middleware values, so they compose with
// compose.Merge, Stack and Chain:
//
//	h := compose.NewStack(
//		middleware.Recover[*endpoint.Context](),
//		middleware.Logging[*endpoint.Context](),
//		middleware.RequestID[*endpoint.Context](),
//		middleware.Timeout[*endpoint.Context](10*time.Second),
//	).Apply(terminal)
//
// Ordering matters: Recover outermost so it catches panics from everything,
// Logging outside RequestID so failures are logged with the ID already set,
// Retry outside anything that must run once per request, Timeout closest to
// the slow work it guards.
//
// # Error flow
//
// Errors returned by inner layers travel outward through each middleware's
// next call site. Logging logs and re-returns them, Retry re-invokes the
// inner chain, Recover turns panics into errors, and whatever escapes the
// outermost layer is translated by the endpoint's error handler.
package middleware
