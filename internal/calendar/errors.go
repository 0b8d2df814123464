package calendar

import "errors"

// Validation errors. Their messages are returned to the caller as is.
var (
	ErrUnknownOp       = errors.New("unknown op")
	ErrMissingTitle    = errors.New("missing title")
	ErrMissingDate     = errors.New("missing date")
	ErrMissingStartEnd = errors.New("missing start/end")
	ErrMissingEventID  = errors.New("missing eventId")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidPatch    = errors.New("invalid patch")
)

// UpstreamError marks a failure reported by the calendar API.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is caused by bad caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrUnknownOp, ErrMissingTitle, ErrMissingDate, ErrMissingStartEnd,
		ErrMissingEventID, ErrInvalidDate, ErrInvalidPatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
