// Package events publishes record-change notifications so external consumers
// (dashboards, sync jobs) can react to grade updates without polling.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// DefaultSubject is the NATS subject record events are published on.
const DefaultSubject = "siakad.records"

// RecordEvent describes one reconciliation outcome.
type RecordEvent struct {
	Type       string    `json:"type"`
	RecordID   string    `json:"record_id"`
	StudentID  string    `json:"student_id"`
	CourseCode string    `json:"course_code"`
	Grade      float64   `json:"grade"`
	Attempts   int       `json:"attempts"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits record events. Implementations must be safe to call with a
// nil receiver check upstream; publishing is fire-and-forget and never blocks
// the write path on delivery.
type Publisher interface {
	PublishRecordEvent(ctx context.Context, event RecordEvent)
}

type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  zerolog.Logger
}

// NewNATSPublisher builds a publisher over an established NATS connection.
func NewNATSPublisher(conn *nats.Conn, subject string, logger zerolog.Logger) Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger.With().Str("component", "record_event_publisher").Logger(),
	}
}

func (p *natsPublisher) PublishRecordEvent(ctx context.Context, event RecordEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to encode record event")
		return
	}

	if err := p.conn.Publish(p.subject, payload); err != nil {
		p.logger.Warn().Err(err).
			Str("record_id", event.RecordID).
			Str("type", event.Type).
			Msg("failed to publish record event")
	}
}
