package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// It extends context.Context so a single value travels the whole call
// graph of a request, including goroutines spawned along the way.
//
// Param exposes values supplied by the hosting router (path parameters);
// the library passes them through without inspecting their shape.
// SetValue attaches arbitrary keyed data to the request so middleware can
// hand information to inner layers and the terminal handler.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
