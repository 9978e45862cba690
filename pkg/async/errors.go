package async

import "errors"

var (
	// ErrTimeout is returned when an await exceeds its deadline.
	ErrTimeout = errors.New("async: await timed out")
)
