package compose

import "github.com/dmitrymomot/wrapkit/core/handler"

// Stack accumulates middlewares so that the most recently added one nests
// closest to the terminal handler: its pre-next logic runs last before the
// handler and its post-next logic runs first after the handler returns.
//
// Stack values are immutable; With returns a new value, so a partially
// built stack can be shared and extended independently. The zero value is
// the identity.
type Stack[C handler.Context] struct {
	mw handler.Middleware[C]
}

// NewStack starts a stack from the given middlewares, first argument
// outermost.
func NewStack[C handler.Context](middlewares ...handler.Middleware[C]) Stack[C] {
	var s Stack[C]
	for _, mw := range middlewares {
		s = s.With(mw)
	}
	return s
}

// With appends a middleware that will nest inside everything added so far.
func (s Stack[C]) With(mw handler.Middleware[C]) Stack[C] {
	if s.mw == nil {
		return Stack[C]{mw: mw}
	}
	return Stack[C]{mw: Merge(s.mw, mw)}
}

// Apply wraps the terminal handler with the accumulated middlewares.
func (s Stack[C]) Apply(h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	if s.mw == nil {
		return h
	}
	return s.mw(h)
}

// Middleware returns the stack as a single composable middleware.
func (s Stack[C]) Middleware() handler.Middleware[C] {
	return s.Apply
}

// Chain accumulates middlewares in the mirror order of Stack: the first
// middleware given nests closest to the terminal handler, and every
// subsequent With call wraps further outward. Post-next logic therefore
// unwinds in the order the middlewares were added.
//
// Like Stack, Chain values are immutable and the zero value is the identity.
type Chain[C handler.Context] struct {
	mw handler.Middleware[C]
}

// NewChain starts a chain from the given middlewares, first argument
// innermost.
func NewChain[C handler.Context](middlewares ...handler.Middleware[C]) Chain[C] {
	var c Chain[C]
	for _, mw := range middlewares {
		c = c.With(mw)
	}
	return c
}

// With adds a middleware that will wrap everything added so far.
func (c Chain[C]) With(mw handler.Middleware[C]) Chain[C] {
	if c.mw == nil {
		return Chain[C]{mw: mw}
	}
	return Chain[C]{mw: Merge(mw, c.mw)}
}

// Apply wraps the terminal handler with the accumulated middlewares.
func (c Chain[C]) Apply(h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	if c.mw == nil {
		return h
	}
	return c.mw(h)
}

// Middleware returns the chain as a single composable middleware.
func (c Chain[C]) Middleware() handler.Middleware[C] {
	return c.Apply
}
