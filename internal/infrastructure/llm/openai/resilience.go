package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/resilience"
)

// HTTPStatusError reports a non-2xx answer from the completions endpoint.
type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("openai %s: %s: %s", e.Operation, e.Status, e.Body)
	}
	return fmt.Sprintf("openai %s: %s", e.Operation, e.Status)
}

func classifyOpenAIError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return resilience.ErrorClassification{Retryable: true, RecordFailure: false}
		case statusErr.StatusCode >= 500:
			return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
		default:
			// Auth and validation failures repeat; surface them immediately.
			return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}
	return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
}
