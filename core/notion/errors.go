package notion

import (
	"errors"
	"fmt"
)

// ErrRemoteCall marks every failure of a call to the API, whether the request never
// completed or the API answered with an error object.
var ErrRemoteCall = errors.New("notion: remote call failed")

// ErrMissingToken is returned when a client is created without a credential.
var ErrMissingToken = errors.New("notion: missing integration token")

// APIError is the error object returned by the API.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Is reports APIError as a remote call failure.
func (e *APIError) Is(target error) bool {
	return target == ErrRemoteCall
}

// IsRateLimited reports whether the API rejected the call for exceeding its rate limit.
func (e *APIError) IsRateLimited() bool {
	return e.Status == 429 || e.Code == "rate_limited"
}
