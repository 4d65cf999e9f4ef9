package remote

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: DNS resolution, refused
// connections, timeouts. It is the only error class that triggers the
// local-mirror fallback; match it with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// APIError is an application-level rejection: the server answered with a
// non-2xx status. It never triggers fallback and is surfaced to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}
