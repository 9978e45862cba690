// Package response provides small constructors for the handler.Response
// values returned by handlers and middleware: plain text, JSON, bare status
// codes, and error propagation.
package response
