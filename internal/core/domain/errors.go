package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrIndexUnavailable = errors.New("document index unavailable")
	ErrAdapterProtocol  = errors.New("malformed index response")
	ErrSessionNotFound  = errors.New("session not found")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
