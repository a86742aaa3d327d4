package leave

import (
	"context"
	"database/sql"
)

// Store is the durable home of leave requests.
//
// Upsert inserts when the id is unseen (the request must carry Version 0)
// and otherwise replaces the whole record, approvals included, provided the
// stored Version still equals the incoming one. On success the caller's
// request carries the new Version.
//
// Effects run after the write and inside the same unit of work: a failing
// effect rolls the write back. Stores backed by a database hand each effect
// the open transaction; the memory store passes a nil tx.
//
//go:generate mockgen -source=leave_store.go -destination=mock/leave_store_mock.go -package=mock
type Store interface {
	// GetAll returns every request in creation order.
	GetAll(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	Upsert(ctx context.Context, req *LeaveRequest, effects ...Effect) error
	DeleteByID(ctx context.Context, id string, effects ...Effect) error
}

// Effect is work that must commit or roll back together with a store write.
type Effect func(ctx context.Context, tx *sql.Tx) error

func runEffects(ctx context.Context, tx *sql.Tx, effects []Effect) error {
	for _, effect := range effects {
		if err := effect(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}
