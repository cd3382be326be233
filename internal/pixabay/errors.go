package pixabay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed upstream exchange into the small set of
// outcomes surfaced to callers.
type ErrorKind string

const (
	KindAuthenticationFailed ErrorKind = "authentication_failed"
	KindRateLimited          ErrorKind = "rate_limited"
	KindUpstreamFailed       ErrorKind = "upstream_request_failed"
	KindCancelled            ErrorKind = "cancelled"
)

// APIError is returned for any failed Pixabay exchange. Status is the
// upstream HTTP status when one was received, 0 otherwise.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// maxErrorBodyBytes caps how much of an upstream error body is echoed
// back to the caller.
const maxErrorBodyBytes = 200

// classifyStatus maps a non-200 upstream response to an APIError.
func classifyStatus(status int, body []byte) *APIError {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &APIError{
			Kind:    KindAuthenticationFailed,
			Status:  status,
			Message: "Pixabay authentication failed. Verify the API key.",
		}
	case http.StatusTooManyRequests:
		return &APIError{
			Kind:    KindRateLimited,
			Status:  status,
			Message: "Pixabay rate limit exceeded. Please wait a moment before trying again.",
		}
	default:
		detail := strings.TrimSpace(string(body))
		if len(detail) > maxErrorBodyBytes {
			detail = detail[:maxErrorBodyBytes] + "..."
		}
		if detail == "" {
			detail = http.StatusText(status)
		}
		return &APIError{
			Kind:    KindUpstreamFailed,
			Status:  status,
			Message: fmt.Sprintf("Pixabay request failed (status %d): %s", status, detail),
		}
	}
}

// wrapTransportError distinguishes caller cancellation from network
// failure. Cancellation must never be reported as an upstream problem.
func wrapTransportError(ctx context.Context, err error) *APIError {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &APIError{
			Kind:    KindCancelled,
			Message: "Pixabay search cancelled.",
		}
	}
	return &APIError{
		Kind:    KindUpstreamFailed,
		Message: fmt.Sprintf("Pixabay request failed: %v", err),
	}
}
