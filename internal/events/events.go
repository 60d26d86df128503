package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Topic carries every ledger event; consumers filter on Event.Type.
const Topic = "waste-ledger.events"

const (
	Source  = "waste-ledger-service"
	Version = "1.0"
)

// Event types published by the ledger services.
const (
	TypeUserRegistered = "user.registered"
	TypeCodeGenerated  = "verification.code_generated"
	TypeCodeConsumed   = "verification.code_consumed"
	TypeWasteRecorded  = "waste.recorded"
)

// Event is the envelope for all domain events.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent builds an envelope with a fresh ID and timestamp.
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    Source,
		Version:   Version,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events. Publishing is best-effort from the
// caller's point of view: services log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
