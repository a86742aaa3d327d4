package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/events"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultBatchSize    = 50
	defaultPollInterval = 3 * time.Second
)

// Outbox is the part of kafka.OutboxRepository the relay drains.
type Outbox interface {
	ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// DrainStats summarises one pass over the pending audit events.
type DrainStats struct {
	Sent   int
	Failed int
	// Dead counts events whose failure used up their last retry.
	Dead int
}

// AuditRelay publishes audit entries parked in the outbox to Kafka.
type AuditRelay struct {
	outbox    Outbox
	writer    MessageWriter
	interval  time.Duration
	batchSize int
	logger    *zap.Logger
}

func NewAuditRelay(outbox Outbox, writer MessageWriter, interval time.Duration, logger ...*zap.Logger) *AuditRelay {
	l := zap.L().Named("kafka.producer.audit_relay")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer.audit_relay")
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &AuditRelay{
		outbox:    outbox,
		writer:    writer,
		interval:  interval,
		batchSize: defaultBatchSize,
		logger:    l,
	}
}

// Run drains once on start and then on every tick until ctx is done. A full
// batch is followed straight away by another drain so a backlog does not wait
// out the poll interval.
func (r *AuditRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("audit relay started",
		zap.Duration("poll_interval", r.interval),
		zap.Int("batch_size", r.batchSize),
	)

	for {
		r.drainBacklog(ctx)

		select {
		case <-ctx.Done():
			r.logger.Info("audit relay stopped")
			return
		case <-ticker.C:
		}
	}
}

func (r *AuditRelay) drainBacklog(ctx context.Context) {
	for ctx.Err() == nil {
		stats, err := r.Drain(ctx)
		if err != nil {
			r.logger.Error("list pending audit events failed", zap.Error(err))
			return
		}
		if stats.Sent+stats.Failed < r.batchSize {
			return
		}
	}
}

// Drain publishes one batch of pending audit events.
func (r *AuditRelay) Drain(ctx context.Context) (DrainStats, error) {
	var stats DrainStats

	pending, err := r.outbox.ListPending(ctx, r.batchSize)
	if err != nil {
		return stats, err
	}
	if len(pending) == 0 {
		return stats, nil
	}

	for _, event := range pending {
		fields := auditFields(event)

		if err := publishEvent(ctx, r.writer, event); err != nil {
			stats.Failed++
			if event.RetryCount+1 >= kafka.MaxOutboxRetries {
				stats.Dead++
				r.logger.Error("audit event out of retries", append(fields, zap.Error(err))...)
			} else {
				r.logger.Warn("publish audit event failed", append(fields, zap.Error(err))...)
			}
			if markErr := r.outbox.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				r.logger.Error("record audit publish failure failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		if err := r.outbox.MarkSent(ctx, event.ID); err != nil {
			// The event went out; the next pass republishes it and the
			// consumer drops the duplicate by event id.
			r.logger.Error("mark audit event sent failed", append(fields, zap.Error(err))...)
			continue
		}
		stats.Sent++
		r.logger.Debug("audit event published", fields...)
	}

	r.logger.Info("audit relay pass",
		zap.Int("pending", len(pending)),
		zap.Int("sent", stats.Sent),
		zap.Int("failed", stats.Failed),
		zap.Int("dead", stats.Dead),
	)
	return stats, nil
}

func auditFields(event kafka.OutboxEvent) []zap.Field {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("topic", event.Topic),
		zap.Int("retry_count", event.RetryCount),
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}

	var logged events.AuditLoggedEvent
	if err := json.Unmarshal(event.Payload, &logged); err == nil && logged.Action != "" {
		fields = append(fields,
			zap.String("action", logged.Action),
			zap.String("actor_id", logged.ActorID),
		)
	}
	return fields
}
