package nats

import (
	"errors"
	"testing"

	"github.com/nats-io/nats.go"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

func TestConnectionErrorsBecomeTemporary(t *testing.T) {
	err := wrapTemporaryIfNeeded("publish transcript", nats.ErrConnectionClosed)
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Errorf("expected temporary kind, got %v", err)
	}
	if !errors.Is(err, nats.ErrConnectionClosed) {
		t.Errorf("cause lost: %v", err)
	}
}

func TestOtherErrorsPassThrough(t *testing.T) {
	cause := errors.New("bad subject")
	err := wrapTemporaryIfNeeded("publish transcript", cause)
	if domain.IsKind(err, domain.ErrTemporary) {
		t.Errorf("must not mark programming errors temporary: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause lost: %v", err)
	}
}

func TestNilErrorStaysNil(t *testing.T) {
	if err := wrapTemporaryIfNeeded("publish transcript", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
