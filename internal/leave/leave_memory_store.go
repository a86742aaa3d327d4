package leave

import (
	"context"
	"sync"
	"time"

	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
)

// MemoryStore keeps requests in process memory in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	items map[string]LeaveRequest
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]LeaveRequest),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) GetAll(_ context.Context) ([]LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	out := item.Clone()
	return &out, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, req *LeaveRequest, effects ...Effect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.items[req.ID]
	switch {
	case !exists && req.Version != 0:
		return leaveerrors.ErrConcurrentModification
	case exists && stored.Version != req.Version:
		return leaveerrors.ErrConcurrentModification
	}

	if err := runEffects(ctx, nil, effects); err != nil {
		return err
	}

	now := s.now()
	if !exists {
		if req.CreatedAt.IsZero() {
			req.CreatedAt = now
		}
		s.order = append(s.order, req.ID)
	}
	req.Version++
	req.UpdatedAt = now
	s.items[req.ID] = req.Clone()
	return nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string, effects ...Effect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return leaveerrors.ErrLeaveNotFound
	}
	if err := runEffects(ctx, nil, effects); err != nil {
		return err
	}

	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
