// Package audit records who did what to a leave request.
package audit

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	ActionLeaveRequest   = "LEAVE_REQUEST"
	ActionApproveLeave   = "APPROVE_LEAVE"
	ActionRejectLeave    = "REJECT_LEAVE"
	ActionDeleteLeave    = "DELETE_LEAVE"
	ActionServerShutdown = "SERVER_SHUTDOWN"
)

type Entry struct {
	ActorID string
	Action  string
	Details string
}

// Sink accepts audit entries.
type Sink interface {
	Append(ctx context.Context, entry Entry) error
}

// TxSink is a Sink that can write inside the caller's database transaction,
// so the entry commits or rolls back with the change it describes.
type TxSink interface {
	Sink
	AppendTx(ctx context.Context, tx *sql.Tx, entry Entry) error
}

// InTx returns a store effect that appends entry through sink, joining tx
// when there is one and the sink supports it.
func InTx(sink Sink, entry Entry) func(ctx context.Context, tx *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		if ts, ok := sink.(TxSink); ok && tx != nil {
			return ts.AppendTx(ctx, tx, entry)
		}
		return sink.Append(ctx, entry)
	}
}

// LoggerSink writes entries to the structured log.
type LoggerSink struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewLoggerSink(logger ...*zap.Logger) *LoggerSink {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &LoggerSink{logger: l, now: func() time.Time { return time.Now().UTC() }}
}

func (s *LoggerSink) Append(_ context.Context, entry Entry) error {
	s.logger.Info("audit event",
		zap.String("timestamp", s.now().Format(time.RFC3339)),
		zap.String("actor_id", entry.ActorID),
		zap.String("action", entry.Action),
		zap.String("details", entry.Details),
	)
	return nil
}

// MultiSink fans an entry out to every sink and joins their errors.
type MultiSink []Sink

func (m MultiSink) Append(ctx context.Context, entry Entry) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AppendTx stops at the first failure and leaves the rollback to the caller.
func (m MultiSink) AppendTx(ctx context.Context, tx *sql.Tx, entry Entry) error {
	for _, s := range m {
		if err := InTx(s, entry)(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}
