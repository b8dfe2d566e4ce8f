package platform

import "fmt"

// NetworkError means the request never produced a usable response (transport
// failure, timeout, unreachable host).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("platform %s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError means the platform answered but reported failure: a non-2xx
// status or a success:false envelope. The two are treated identically.
type ServerError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("platform %s: server returned status %d", e.Op, e.StatusCode)
}
