package response

import (
	"net/http"

	"github.com/dmitrymomot/wrapkit/core/handler"
)

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with custom status code.
func StringWithStatus(content string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if content != "" {
			_, err := w.Write([]byte(content))
			return err
		}
		return nil
	}
}

// StatusCode creates an empty response with the given status code.
func StatusCode(status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(status)
		return nil
	}
}

// NoContent creates a 204 No Content response.
func NoContent() handler.Response {
	return StatusCode(http.StatusNoContent)
}
