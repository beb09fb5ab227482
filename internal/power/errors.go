package power

import "fmt"

// APIError represents a non-2xx response from the NASA POWER API. It carries
// the status and body and is not retried.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("power api error %d: %s", e.StatusCode, e.Body)
}

// NetworkError represents a timeout or connection failure. Safe to retry
// later; no automatic retry is performed.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError represents a 2xx response whose JSON does not have
// the expected parameter structure.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed power api response: %s", e.Reason)
}
