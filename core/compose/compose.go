package compose

import "github.com/dmitrymomot/wrapkit/core/handler"

// Wrap lifts a middleware function into a reusable Middleware.
//
// The returned middleware, applied to a terminal handler, yields a handler
// that invokes fn with a continuation bound to that terminal handler.
// Nothing executes at wrap time; fn runs only when the composed handler is
// invoked with a concrete request. Whatever fn returns, including an error
// raised before or after it calls next, becomes the composed handler's
// result.
func Wrap[C handler.Context](fn handler.MiddlewareFunc[C]) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (handler.Response, error) {
			return fn(next, ctx)
		}
	}
}

// Merge composes two middlewares into one: Merge(outer, inner)(h) is
// outer(inner(h)). At invocation time outer runs first, inner runs closer
// to the terminal handler, so pre-next logic executes outer-then-inner and
// post-next logic unwinds inner-then-outer. Merge is associative in effect:
// either grouping of three middlewares produces the same invocation order.
func Merge[C handler.Context](outer, inner handler.Middleware[C]) handler.Middleware[C] {
	return func(h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return outer(inner(h))
	}
}

// Compose folds any number of middlewares into one with Merge. The first
// argument becomes the outermost layer, matching the order middlewares are
// listed in a router's Use call. Compose() with no arguments returns the
// identity middleware.
func Compose[C handler.Context](middlewares ...handler.Middleware[C]) handler.Middleware[C] {
	merged := identity[C]()
	for _, mw := range middlewares {
		merged = Merge(merged, mw)
	}
	return merged
}

func identity[C handler.Context]() handler.Middleware[C] {
	return func(h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return h
	}
}
