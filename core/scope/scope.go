package scope

import (
	"context"

	"github.com/dmitrymomot/wrapkit/core/handler"
)

// scopeKey is allocated per Scope instance; pointer identity keeps
// independent scopes from colliding even when they carry the same value
// type. Non-zero size so distinct allocations cannot share an address.
type scopeKey struct{ _ byte }

// binding is the per-request record stored on the context chain. Its
// presence marks "inside a scope" even when no value was initialized,
// so dependent code can tell an absent value apart from no scope at all.
type binding[T any] struct {
	value   T
	present bool
}

// Scope publishes one request-scoped value to the whole call graph of a
// request without explicit parameter threading. Its middleware computes the
// value once per incoming request and binds it to the request's context;
// any code that receives the context, including goroutines spawned during
// handling, can read the value back through the same Scope.
//
// Bindings are isolated per request: concurrent requests flowing through
// the same middleware never observe each other's values, and a binding is
// discarded together with its request context.
type Scope[C handler.Context, T any] struct {
	key  *scopeKey
	init func(ctx C) T
}

// New creates a scope whose middleware derives the published value from the
// incoming request via init. A nil init opens the scope with no value:
// Active reports true inside the request while Current reports no value.
func New[C handler.Context, T any](init func(ctx C) T) *Scope[C, T] {
	return &Scope[C, T]{
		key:  new(scopeKey),
		init: init,
	}
}

// Middleware returns the middleware establishing the binding. It runs init
// once, binds the result to the request context, and delegates inward; the
// binding stays visible for the full depth and asynchronous lifetime of the
// request's handling.
func (s *Scope[C, T]) Middleware() handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (handler.Response, error) {
			var b binding[T]
			if s.init != nil {
				b.value = s.init(ctx)
				b.present = true
			}
			ctx.SetValue(s.key, b)
			return next(ctx)
		}
	}
}

// Current returns the value bound for the request carrying ctx. The second
// return is false both outside any binding and inside a binding opened
// without an initializer; use Active to tell the two apart.
func (s *Scope[C, T]) Current(ctx context.Context) (T, bool) {
	b, ok := ctx.Value(s.key).(binding[T])
	if !ok || !b.present {
		var zero T
		return zero, false
	}
	return b.value, true
}

// Active reports whether ctx is inside a binding established by this scope,
// regardless of whether a value is present.
func (s *Scope[C, T]) Active(ctx context.Context) bool {
	_, ok := ctx.Value(s.key).(binding[T])
	return ok
}
