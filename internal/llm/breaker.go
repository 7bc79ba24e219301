package llm

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBreakerFailures = 3
	breakerOpenFor         = 30 * time.Second
	breakerHalfOpenProbes  = 1
)

// circuitBreaker trips after consecutive failed calls so a dead endpoint
// costs one fast rejection per request instead of a full timeout.
type circuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

func newCircuitBreaker(maxFailures uint32) *circuitBreaker {
	if maxFailures == 0 {
		maxFailures = defaultBreakerFailures
	}
	settings := gobreaker.Settings{
		Name:        "llm",
		MaxRequests: breakerHalfOpenProbes,
		Timeout:     breakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &circuitBreaker{breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (cb *circuitBreaker) execute(fn func() (*chatResponse, error)) (*chatResponse, error) {
	result, err := cb.breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}
	return result.(*chatResponse), nil
}

// state returns "closed", "open" or "half-open".
func (cb *circuitBreaker) state() string {
	switch cb.breaker.State() {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateOpen:
		return "open"
	case gobreaker.StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}
