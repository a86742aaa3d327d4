package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/audit"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// AuditRecorder persists one audit log row.
type AuditRecorder interface {
	Create(ctx context.Context, l *audit.Log) error
}

type outcome int

const (
	outcomeStored outcome = iota
	outcomeSkipped
	outcomeRetry
)

const (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

// retryDelay is the pause before the given store attempt (1-based).
var retryDelay = func(attempt int) time.Duration {
	d := retryBaseDelay << min(attempt-1, 6)
	return min(d, retryMaxDelay)
}

func ConsumeAuditLog(
	ctx context.Context,
	reader MessageReader,
	recorder AuditRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit_log")
	log.Info("audit log consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit log consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		// A later commit would move the group offset past this message, so a
		// failed store blocks the partition until it succeeds.
		if !handleWithRetry(ctx, msg, recorder, log) {
			log.Info("audit log consumer stopped with message uncommitted",
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit audit message failed", zap.Error(err))
		}
	}
}

// handleWithRetry reports false when ctx ends before the message is handled.
func handleWithRetry(ctx context.Context, msg kafkago.Message, recorder AuditRecorder, log *zap.Logger) bool {
	for attempt := 1; ; attempt++ {
		if handleMessage(ctx, msg, recorder, log) != outcomeRetry {
			return true
		}

		delay := retryDelay(attempt)
		log.Warn("retrying audit log store",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Int64("offset", msg.Offset),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, recorder AuditRecorder, log *zap.Logger) outcome {
	var event events.AuditLoggedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode audit.logged event failed", zap.Error(err))
		return outcomeSkipped
	}
	if event.EventID == "" {
		log.Warn("audit.logged event without id, skipping", zap.Int64("offset", msg.Offset))
		return outcomeSkipped
	}

	err := recorder.Create(ctx, &audit.Log{
		ID:        event.EventID,
		ActorID:   event.ActorID,
		Action:    event.Action,
		Details:   event.Details,
		CreatedAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		if isDuplicateAuditLog(err) {
			log.Warn("audit log already stored, skipping", zap.String("event_id", event.EventID))
			return outcomeSkipped
		}
		log.Error("store audit log failed", zap.String("event_id", event.EventID), zap.Error(err))
		return outcomeRetry
	}

	log.Debug("audit log stored",
		zap.String("event_id", event.EventID),
		zap.String("action", event.Action),
		zap.String("request_id", event.RequestID),
	)
	return outcomeStored
}

func isDuplicateAuditLog(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "audit_logs")
}
