package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/events"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/contextutil"

	"github.com/google/uuid"
)

// OutboxSink stores entries as pending outbox events. The worker publishes
// them to Kafka and the consumer persists them into audit_logs.
type OutboxSink struct {
	repo  kafka.OutboxRepository
	topic string
	now   func() time.Time
	newID func() string
}

func NewOutboxSink(repo kafka.OutboxRepository, topic string) *OutboxSink {
	if topic == "" {
		topic = events.AuditLoggedTopic
	}
	return &OutboxSink{
		repo:  repo,
		topic: topic,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}
}

func (s *OutboxSink) Append(ctx context.Context, entry Entry) error {
	return s.write(ctx, s.repo, entry)
}

// AppendTx writes the outbox row inside tx.
func (s *OutboxSink) AppendTx(ctx context.Context, tx *sql.Tx, entry Entry) error {
	return s.write(ctx, s.repo.WithTx(tx), entry)
}

func (s *OutboxSink) write(ctx context.Context, repo kafka.OutboxRepository, entry Entry) error {
	eventID := s.newID()
	requestID := contextutil.GetRequestID(ctx)

	payload, err := json.Marshal(events.AuditLoggedEvent{
		EventType:  events.AuditLoggedEventType,
		EventID:    eventID,
		RequestID:  requestID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		Details:    entry.Details,
		OccurredAt: s.now(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            eventID,
		RequestID:     requestID,
		AggregateType: "audit_log",
		AggregateID:   eventID,
		EventType:     events.AuditLoggedEventType,
		Topic:         s.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}
	return repo.Create(ctx, event)
}
