package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"

	"github.com/stretchr/testify/assert"
)

func newPending(id, requester string) *leave.LeaveRequest {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return &leave.LeaveRequest{
		ID:                  id,
		RequesterID:         requester,
		LeaveType:           "Vacation",
		StartDate:           start,
		EndDate:             start.AddDate(0, 0, 2),
		ApprovalChain:       registry.RoleList{registry.RoleOM, registry.RoleDM, registry.RoleCEO},
		CurrentApproverRole: registry.RoleOM,
		Status:              leave.StatusPending,
	}
}

func TestMemoryStore_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	store := leave.NewMemoryStore()

	req := newPending("L1", "u2")
	assert.NoError(t, store.Upsert(ctx, req))
	assert.Equal(t, int64(1), req.Version)
	assert.False(t, req.CreatedAt.IsZero())

	got, err := store.GetByID(ctx, "L1")
	assert.NoError(t, err)
	assert.Equal(t, "u2", got.RequesterID)
	assert.Equal(t, int64(1), got.Version)

	t.Run("returned values do not alias the store", func(t *testing.T) {
		got.ApprovalChain[0] = registry.RoleHR
		got.Status = leave.StatusApproved

		again, _ := store.GetByID(ctx, "L1")
		assert.Equal(t, registry.RoleOM, again.ApprovalChain[0])
		assert.Equal(t, leave.StatusPending, again.Status)
	})

	t.Run("replace with current version", func(t *testing.T) {
		cur, _ := store.GetByID(ctx, "L1")
		cur.CurrentApproverRole = registry.RoleDM
		cur.Approvals = append(cur.Approvals, leave.Approval{Step: 0, Role: registry.RoleOM, ApproverID: "u5", Decision: leave.DecisionApproved})

		assert.NoError(t, store.Upsert(ctx, cur))
		assert.Equal(t, int64(2), cur.Version)

		stored, _ := store.GetByID(ctx, "L1")
		assert.Equal(t, registry.RoleDM, stored.CurrentApproverRole)
		assert.Len(t, stored.Approvals, 1)
	})

	t.Run("stale version is refused", func(t *testing.T) {
		stale := newPending("L1", "u2")
		stale.Version = 1

		err := store.Upsert(ctx, stale)
		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentModification)

		stored, _ := store.GetByID(ctx, "L1")
		assert.Equal(t, registry.RoleDM, stored.CurrentApproverRole)
	})

	t.Run("unseen id with a version is refused", func(t *testing.T) {
		ghost := newPending("L-ghost", "u2")
		ghost.Version = 3

		err := store.Upsert(ctx, ghost)
		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentModification)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := store.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestMemoryStore_GetAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := leave.NewMemoryStore()

	for _, id := range []string{"c", "a", "b"} {
		assert.NoError(t, store.Upsert(ctx, newPending(id, "u2")))
	}

	// Updating an existing request must not move it.
	a, _ := store.GetByID(ctx, "a")
	a.Reason = "edited"
	assert.NoError(t, store.Upsert(ctx, a))

	all, err := store.GetAll(ctx)
	assert.NoError(t, err)
	ids := []string{}
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestMemoryStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	store := leave.NewMemoryStore()
	assert.NoError(t, store.Upsert(ctx, newPending("x", "u2")))
	assert.NoError(t, store.Upsert(ctx, newPending("y", "u2")))

	assert.NoError(t, store.DeleteByID(ctx, "x"))
	assert.ErrorIs(t, store.DeleteByID(ctx, "x"), leaveerrors.ErrLeaveNotFound)

	all, _ := store.GetAll(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, "y", all[0].ID)
}

func TestMemoryStore_FailedEffectLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := leave.NewMemoryStore()
	var ran []string
	effect := func(name string, err error) leave.Effect {
		return func(_ context.Context, tx *sql.Tx) error {
			assert.Nil(t, tx)
			ran = append(ran, name)
			return err
		}
	}

	req := newPending("L1", "u2")
	assert.EqualError(t, store.Upsert(ctx, req, effect("insert", errors.New("sink down"))), "sink down")
	assert.Equal(t, int64(0), req.Version)
	_, err := store.GetByID(ctx, "L1")
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

	assert.NoError(t, store.Upsert(ctx, req, effect("insert", nil)))

	next := req.Clone()
	next.CurrentApproverRole = registry.RoleDM
	assert.Error(t, store.Upsert(ctx, &next, effect("update", errors.New("sink down"))))
	got, err := store.GetByID(ctx, "L1")
	assert.NoError(t, err)
	assert.Equal(t, registry.RoleOM, got.CurrentApproverRole)
	assert.Equal(t, int64(1), got.Version)

	assert.Error(t, store.DeleteByID(ctx, "L1", effect("delete", errors.New("sink down"))))
	_, err = store.GetByID(ctx, "L1")
	assert.NoError(t, err)

	assert.ErrorIs(t, store.DeleteByID(ctx, "missing", effect("missing", nil)), leaveerrors.ErrLeaveNotFound)
	assert.Equal(t, []string{"insert", "insert", "update", "delete"}, ran)
}

func TestMemoryStore_ConcurrentWritersOneWins(t *testing.T) {
	ctx := context.Background()
	store := leave.NewMemoryStore()
	assert.NoError(t, store.Upsert(ctx, newPending("race", "u2")))

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cur := newPending("race", "u2")
			cur.Version = 1
			if store.Upsert(ctx, cur) == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	got, _ := store.GetByID(ctx, "race")
	assert.Equal(t, int64(2), got.Version)
}
