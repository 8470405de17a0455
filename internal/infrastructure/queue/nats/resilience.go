package nats

import (
	"errors"

	"github.com/nats-io/nats.go"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// wrapTemporaryIfNeeded marks connection-level failures as temporary so
// callers treating the audit trail as best effort can tell them from
// programming errors.
func wrapTemporaryIfNeeded(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

func isConnectionError(err error) bool {
	return errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, nats.ErrConnectionDraining) ||
		errors.Is(err, nats.ErrConnectionReconnecting) ||
		errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrDisconnected)
}
