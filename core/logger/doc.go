// Package logger provides slog attribute helpers shared by the middleware
// and the endpoint bridge. Helpers return an empty Attr for nil or empty
// input, which the standard slog handlers drop silently.
package logger
