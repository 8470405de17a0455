package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryingConfig(attempts int) Config {
	return Config{
		RetryMaxAttempts:    attempts,
		RetryInitialBackoff: time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2.0,
		BreakerEnabled:      false,
	}
}

func TestExecuteRetriesRetryableErrors(t *testing.T) {
	executor := NewExecutor(retryingConfig(3))

	calls := 0
	err := executor.Execute(context.Background(), "index.search", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: true, RecordFailure: true}
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestExecuteStopsOnNonRetryable(t *testing.T) {
	executor := NewExecutor(retryingConfig(5))

	calls := 0
	err := executor.Execute(context.Background(), "index.search", func(context.Context) error {
		calls++
		return errors.New("bad request")
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: false}
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected single attempt, got %d", calls)
	}
}

func TestExecuteRespectsContextCancel(t *testing.T) {
	executor := NewExecutor(retryingConfig(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := executor.Execute(ctx, "index.search", func(context.Context) error {
		calls++
		return nil
	}, nil)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if calls != 0 {
		t.Fatalf("callback must not run after cancel, got %d calls", calls)
	}
}

func TestBreakerOpensAfterFailureRatio(t *testing.T) {
	executor := NewExecutor(Config{
		RetryMaxAttempts:        1,
		RetryInitialBackoff:     time.Millisecond,
		RetryMaxBackoff:         time.Millisecond,
		RetryMultiplier:         1.0,
		BreakerEnabled:          true,
		BreakerMinRequests:      3,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      time.Minute,
		BreakerHalfOpenMaxCalls: 1,
	})

	classifier := func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: true}
	}
	for i := 0; i < 3; i++ {
		_ = executor.Execute(context.Background(), "index.semantic", func(context.Context) error {
			return errors.New("down")
		}, classifier)
	}

	err := executor.Execute(context.Background(), "index.semantic", func(context.Context) error {
		return nil
	}, classifier)
	if !IsCircuitOpen(err) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}
