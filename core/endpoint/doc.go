// Package endpoint bridges composed handlers to net/http. It provides the
// default Context implementation and an adapter that turns a HandlerFunc
// into an http.HandlerFunc, so a fully wrapped handler registers with any
// router exactly like an unwrapped one:
//
//	h := compose.NewStack(
//		middleware.Logging[*endpoint.Context](),
//		middleware.RequestID[*endpoint.Context](),
//	).Apply(terminal)
//
//	mux.Handle("GET /orders/{id}", endpoint.Handler(h))
//
// Custom context types plug in through WithContextFactory; failures and
// recovered panics flow through the configured ErrorHandler before the
// response is rendered.
package endpoint
