package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// AuditLogger drains the event topic and writes one log line per event, so
// the ledger's mutation history is visible even without an external broker.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// Run consumes messages until the channel closes or ctx is cancelled.
func (a *AuditLogger) Run(ctx context.Context, messages <-chan *message.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			a.log(msg)
			msg.Ack()
		}
	}
}

func (a *AuditLogger) log(msg *message.Message) {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		a.logger.Warn("audit: undecodable event payload", "message_id", msg.UUID, "error", err)
		return
	}
	a.logger.Info("ledger event",
		"event_id", event.ID,
		"event_type", event.Type,
		"source", event.Source,
	)
}
