// Package scope provides request-ambient storage: a value computed once per
// request and readable from anywhere in that request's execution graph
// through the request context, without threading it as a parameter.
//
// The canonical use is a trace identifier that deeply nested code and
// spawned goroutines need to attach to logs:
//
//	var traceScope = scope.New(func(ctx *endpoint.Context) string {
//		return uuid.New().String()
//	})
//
//	h := traceScope.Middleware()(terminal)
//
//	// anywhere the request context reaches, including goroutines:
//	if id, ok := traceScope.Current(ctx); ok {
//		log.Info("working", "trace_id", id)
//	}
//
// The context is the propagation vehicle: Go code already hands
// context.Context to every blocking call and goroutine, so a value bound on
// the per-request chain survives asynchronous hops exactly as far as the
// context travels. Outside a binding Current reports no value; Active
// additionally distinguishes "no binding at all" from "binding opened
// without an initializer".
package scope
