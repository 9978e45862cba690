package response

import (
	"net/http"

	"github.com/dmitrymomot/wrapkit/core/handler"
)

// Error returns a response that propagates the given error to whoever
// renders it. Useful when a handler wants the rendering boundary, rather
// than the middleware chain, to decide how the error is presented.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
