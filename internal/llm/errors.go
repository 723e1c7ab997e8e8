package llm

import "errors"

var (
	// ErrDisabled indicates no model endpoint is configured; callers should
	// use their deterministic fallback without attempting a call.
	ErrDisabled = errors.New("llm disabled by configuration")

	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
