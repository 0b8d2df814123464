package gcalendar

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

var (
	ErrMissingRefreshToken = errors.New("refresh token is required")
	ErrInvalidPatch        = errors.New("patch must be a JSON object")
)

// UpstreamError wraps a failed Calendar API call.
type UpstreamError struct {
	Op         string
	StatusCode int // 0 when the call never got a response
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func newUpstreamError(op string, err error) error {
	ue := &UpstreamError{Op: op, Err: err}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		ue.StatusCode = apiErr.Code
	}
	return ue
}
