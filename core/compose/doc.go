// Package compose implements the middleware composition algebra: a single
// pairwise Merge primitive plus the Wrap constructor, with Stack and Chain
// builders layered on top as pure sugar over repeated Merge calls.
//
// # Wrap
//
// Wrap turns a continuation-passing middleware function into a Middleware:
//
//	auth := compose.Wrap(func(next handler.HandlerFunc[*endpoint.Context], ctx *endpoint.Context) (handler.Response, error) {
//		if ctx.Request().Header.Get("Authorization") == "" {
//			return response.StatusCode(http.StatusUnauthorized), nil // short-circuit
//		}
//		return next(ctx)
//	})
//
// # Merge
//
// Merge(outer, inner) applies inner closest to the handler:
//
//	h := compose.Merge(logging, auth)(terminal)
//	// invocation order: logging pre, auth pre, terminal, auth post, logging post
//
// # Stack and Chain
//
// Stack nests the last-added middleware innermost; Chain nests the
// first-given middleware innermost. Given middlewares A, B, C that each
// record their post-next step:
//
//	compose.NewStack(a).With(b).With(c) // post order: C, B, A
//	compose.NewChain(a).With(b).With(c) // post order: A, B, C
//
// Both builders are plain values, reusable across handlers and safe for
// concurrent use; composing never executes middleware logic.
package compose
