package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

const (
	// SubjectTranscripts carries one JSON TranscriptEntry per message.
	SubjectTranscripts = "legal.transcripts"

	workQueueGroup = "transcript-workers"
)

// Queue publishes and consumes transcript entries over NATS core.
type Queue struct {
	conn *nats.Conn
}

func New(url string) (*Queue, error) {
	return NewWithOptions(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats_disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			slog.Info("nats_reconnected", "url", conn.ConnectedUrl())
		}),
	)
}

func NewWithOptions(url string, options ...nats.Option) (*Queue, error) {
	conn, err := nats.Connect(url, options...)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return &Queue{conn: conn}, nil
}

func (q *Queue) PublishTranscript(ctx context.Context, entry domain.TranscriptEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal transcript entry: %w", err)
	}
	if err := q.conn.Publish(SubjectTranscripts, payload); err != nil {
		return wrapTemporaryIfNeeded("publish transcript", err)
	}
	return nil
}

// SubscribeTranscripts delivers entries to handler on a queue group, so
// multiple worker replicas share the stream without duplication. Messages
// that fail to decode are logged and skipped.
func (q *Queue) SubscribeTranscripts(handler func(domain.TranscriptEntry)) (*nats.Subscription, error) {
	sub, err := q.conn.QueueSubscribe(SubjectTranscripts, workQueueGroup, func(msg *nats.Msg) {
		var entry domain.TranscriptEntry
		if err := json.Unmarshal(msg.Data, &entry); err != nil {
			slog.Warn("transcript_message_discarded", "error", err)
			return
		}
		handler(entry)
	})
	if err != nil {
		return nil, wrapTemporaryIfNeeded("subscribe transcripts", err)
	}
	return sub, nil
}

func (q *Queue) Close() {
	if q.conn == nil {
		return
	}
	if err := q.conn.Drain(); err != nil {
		slog.Warn("nats_drain_failed", "error", err)
		q.conn.Close()
	}
}
