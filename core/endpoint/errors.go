package endpoint

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/wrapkit/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilResponse      = errors.New("nil response")
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler translates escaped failures into plain-text HTTP
// error responses, honoring a StatusCode carried by the error.
func defaultErrorHandler[C handler.Context](ctx C, err error) handler.Response {
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		http.Error(w, err.Error(), status)
		return nil
	}
}

// PanicError allows error handlers to detect recovered panics. When a panic
// escapes the handler chain, the endpoint wraps it in an error implementing
// this interface, preserving the original value and the stack trace captured
// at the panic point.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
