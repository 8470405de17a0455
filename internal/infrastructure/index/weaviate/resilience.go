package weaviate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/resilience"
)

// HTTPStatusError reports a non-2xx answer from the Weaviate endpoint.
type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("weaviate %s: %s: %s", e.Operation, e.Status, e.Body)
	}
	return fmt.Sprintf("weaviate %s: %s", e.Operation, e.Status)
}

func classifyWeaviateError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if domain.IsKind(err, domain.ErrAdapterProtocol) {
		// Malformed payloads repeat deterministically; retrying burns budget.
		return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return resilience.ErrorClassification{Retryable: true, RecordFailure: false}
		case statusErr.StatusCode >= 500:
			return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
		default:
			return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}
	return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
}

// wrapSearchError maps transport-level failures onto the error kinds the
// search controller falls back on. Protocol errors keep their kind.
func wrapSearchError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsKind(err, domain.ErrAdapterProtocol) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return domain.WrapError(domain.ErrIndexUnavailable, "weaviate "+operation, err)
}
