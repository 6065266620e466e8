package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	openai "github.com/sashabaranov/go-openai"
)

// FailureKind classifies a failed generation attempt.
type FailureKind string

const (
	FailureTimeout     FailureKind = "timeout"
	FailureConnection  FailureKind = "connection_error"
	FailureRateLimited FailureKind = "rate_limited"
	FailureServerError FailureKind = "server_error"
	FailureClientError FailureKind = "client_error"
	FailureUnknown     FailureKind = "unknown"
)

// ErrEmptyCompletion indicates the API answered 200 with no choices.
var ErrEmptyCompletion = errors.New("empty completion")

// APICallError wraps a failed call with its classification.
type APICallError struct {
	Kind   FailureKind
	Status int // HTTP status when known, 0 otherwise
	Err    error
}

func (e *APICallError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("ai call failed (%s, status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("ai call failed (%s): %v", e.Kind, e.Err)
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

// Classify wraps err in an APICallError with its failure kind.
func Classify(err error) *APICallError {
	if err == nil {
		return nil
	}

	var already *APICallError
	if errors.As(err, &already) {
		return already
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &APICallError{Kind: FailureTimeout, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APICallError{Kind: FailureTimeout, Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &APICallError{Kind: FailureConnection, Err: err}
	}

	return &APICallError{Kind: FailureUnknown, Err: err}
}

func classifyStatus(status int, err error) *APICallError {
	switch {
	case status == 429:
		return &APICallError{Kind: FailureRateLimited, Status: status, Err: err}
	case status >= 500:
		return &APICallError{Kind: FailureServerError, Status: status, Err: err}
	case status >= 400:
		return &APICallError{Kind: FailureClientError, Status: status, Err: err}
	default:
		return &APICallError{Kind: FailureUnknown, Status: status, Err: err}
	}
}

// IsTransient reports whether the error is likely to succeed on retry:
// timeouts, connection resets, rate limits and server-side 5xx.
func IsTransient(err error) bool {
	classified := Classify(err)
	if classified == nil {
		return false
	}
	switch classified.Kind {
	case FailureTimeout, FailureConnection, FailureRateLimited, FailureServerError:
		return true
	default:
		return false
	}
}
