package llm

import "errors"

var (
	// ErrUnavailable indicates the provider endpoint is unreachable or not configured.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrRejected indicates the provider refused the request outright
	// (bad credentials, malformed payload). Retrying will not help.
	ErrRejected = errors.New("llm request rejected")
)
