package audit

import (
	"context"
	"sync"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reader serves the audit log view.
//
//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Reader interface {
	List(ctx context.Context, page, pageSize int) ([]LogResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Reader {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]LogResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count audit logs failed", zap.Error(err))
		return nil, 0, err
	}

	offset := response.Offset(page, pageSize)
	if int64(offset) >= total {
		return []LogResponse{}, total, nil
	}

	logs, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		s.logger.Error("list audit logs failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toResponse(l))
	}
	return out, total, nil
}

// MemoryLog is a Sink and a Reader over an in-process slice. It backs the
// log view when the service runs without a database.
type MemoryLog struct {
	mu    sync.RWMutex
	logs  []Log
	now   func() time.Time
	newID func() string
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}
}

func (m *MemoryLog) Append(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logs = append(m.logs, Log{
		ID:        m.newID(),
		ActorID:   entry.ActorID,
		Action:    entry.Action,
		Details:   entry.Details,
		CreatedAt: m.now(),
	})
	return nil
}

func (m *MemoryLog) List(_ context.Context, page, pageSize int) ([]LogResponse, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.logs)
	start, end := response.Paginate(n, page, pageSize)

	out := make([]LogResponse, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, toResponse(m.logs[n-1-i]))
	}
	return out, int64(n), nil
}
