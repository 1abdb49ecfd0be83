package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorKind classifies an extraction call failure. Every kind except
// KindQuotaExhausted is retryable; quota exhaustion must abort the run.
type ErrorKind string

const (
	KindTimeout        ErrorKind = "TIMEOUT"
	KindRateLimited    ErrorKind = "RATE_LIMITED"
	KindQuotaExhausted ErrorKind = "QUOTA_EXHAUSTED"
	KindService        ErrorKind = "SERVICE_ERROR"
	KindTransport      ErrorKind = "TRANSPORT_ERROR"
)

// ExtractionError is the typed failure of one extraction call.
type ExtractionError struct {
	Kind   ErrorKind
	Status int // HTTP status when the upstream answered, 0 otherwise
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("extraction %s (status %d): %v", e.Kind, e.Status, e.Cause)
	}
	return fmt.Sprintf("extraction %s: %v", e.Kind, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether another attempt may succeed.
func (e *ExtractionError) Retryable() bool {
	return e.Kind != KindQuotaExhausted
}

// ClassifyStatus maps a non-2xx upstream status onto an error kind.
func ClassifyStatus(status int) ErrorKind {
	switch status {
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusPaymentRequired:
		return KindQuotaExhausted
	default:
		return KindService
	}
}

// ClassifyTransport maps a transport-level failure (no HTTP response) onto
// an error kind: deadline overruns become timeouts, everything else is a
// transport error.
func ClassifyTransport(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}

// AsExtractionError unwraps err into an *ExtractionError when possible.
func AsExtractionError(err error) (*ExtractionError, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
