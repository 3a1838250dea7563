package domain

import "errors"

var (
	// ErrMissingData signals that the required 'data' parameter is absent or empty.
	ErrMissingData = errors.New("Missing required parameter 'data'.")
	// ErrInvalidColor signals a color that is not a 6 digit hex code.
	ErrInvalidColor = errors.New("Invalid 'color' parameter, must be a valid 6 digit hex code.")
	// ErrInvalidAPIKey signals that the provided API key is not known.
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// EncodingError wraps a failure of the QR encoder, e.g. content exceeding
// the capacity of the largest symbol version.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	if e.Err == nil {
		return "qr encoding failed"
	}
	return "qr encoding failed: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error { return e.Err }
