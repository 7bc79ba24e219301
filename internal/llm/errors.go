package llm

import "errors"

var (
	// ErrNotConfigured indicates the LLM is disabled or has no API key.
	ErrNotConfigured = errors.New("llm not configured")

	// ErrUnavailable indicates the endpoint is unreachable or rejected the call.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrCircuitOpen indicates recent failures tripped the circuit breaker.
	ErrCircuitOpen = errors.New("llm circuit breaker is open")

	// ErrRateLimited indicates the local limiter or the remote API refused the call.
	ErrRateLimited = errors.New("llm rate limited")
)

// ErrorCode maps an error to a short code for logs and metrics.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrCircuitOpen):
		return "CIRCUIT_OPEN"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMITED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	default:
		return "UNKNOWN"
	}
}
