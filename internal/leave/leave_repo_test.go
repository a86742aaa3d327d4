package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormStore(t *testing.T) (leave.Store, sqlmock.Sqlmock) {
	t.Helper()
	store, _, mock := setupGormStoreWithDB(t)
	return store, mock
}

func setupGormStoreWithDB(t *testing.T) (leave.Store, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return leave.NewGormStore(gdb, zap.NewNop()), db, mock
}

var requestColumns = []string{
	"id", "requester_id", "department_code", "leave_type", "start_date", "end_date", "reason",
	"approval_chain", "current_approver_role", "status", "version", "created_at", "updated_at",
}

func TestGormStore_GetAll(t *testing.T) {
	store, mock := setupGormStore(t)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" ORDER BY created_at ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows(requestColumns).
			AddRow("L1", "u2", "PROD", "Sick Leave", start, start, "flu",
				`["FM","SUP","PM","DM"]`, "SUP", "PENDING", 2, created, created))
	mock.ExpectQuery(`SELECT \* FROM "leave_approvals" WHERE "leave_approvals"."request_id" = \$1 ORDER BY step ASC`).
		WithArgs("L1").
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "step", "role", "approver_id", "decision", "decided_at"}).
			AddRow("L1", 0, "FM", "u7", "APPROVED", created))

	rows, err := store.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, registry.RoleList{registry.RoleFM, registry.RoleSUP, registry.RolePM, registry.RoleDM}, rows[0].ApprovalChain)
	assert.Equal(t, registry.RoleSUP, rows[0].CurrentApproverRole)
	assert.Len(t, rows[0].Approvals, 1)
	assert.Equal(t, "u7", rows[0].Approvals[0].ApproverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetByID_NotFound(t *testing.T) {
	store, mock := setupGormStore(t)

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	_, err := store.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Upsert(t *testing.T) {
	t.Run("insert new request", func(t *testing.T) {
		store, mock := setupGormStore(t)
		req := newPending("L1", "u2")

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "leave_requests"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.Upsert(context.Background(), req))
		assert.Equal(t, int64(1), req.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate insert maps to concurrent modification", func(t *testing.T) {
		store, mock := setupGormStore(t)
		req := newPending("L1", "u2")

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "leave_requests"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "leave_requests_pkey"})
		mock.ExpectRollback()

		err := store.Upsert(context.Background(), req)
		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentModification)
		assert.Equal(t, int64(0), req.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version updates nothing", func(t *testing.T) {
		store, mock := setupGormStore(t)
		req := newPending("L1", "u2")
		req.Version = 4

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.Upsert(context.Background(), req)
		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentModification)
		assert.Equal(t, int64(4), req.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replace rewrites approvals", func(t *testing.T) {
		store, mock := setupGormStore(t)
		req := newPending("L1", "u2")
		req.Version = 1
		req.CurrentApproverRole = registry.RoleDM
		req.Approvals = []leave.Approval{{
			Step: 0, Role: registry.RoleOM, ApproverID: "u5",
			Decision: leave.DecisionApproved, DecidedAt: time.Now().UTC(),
		}}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "leave_approvals" WHERE request_id = \$1`).
			WithArgs("L1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO "leave_approvals"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.Upsert(context.Background(), req))
		assert.Equal(t, int64(2), req.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure is returned as is", func(t *testing.T) {
		store, mock := setupGormStore(t)
		req := newPending("L1", "u2")
		req.Version = 1

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := store.Upsert(context.Background(), req)
		assert.EqualError(t, err, "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStore_DeleteByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, mock := setupGormStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "leave_approvals" WHERE request_id = \$1`).
			WithArgs("L1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "leave_requests" WHERE id = \$1`).
			WithArgs("L1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.DeleteByID(context.Background(), "L1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		store, mock := setupGormStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "leave_approvals"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "leave_requests"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.DeleteByID(context.Background(), "L1")
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func outboxEffect(repo kafka.OutboxRepository, id string) leave.Effect {
	return func(ctx context.Context, tx *sql.Tx) error {
		return repo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            id,
			AggregateType: "audit_log",
			AggregateID:   id,
			EventType:     "audit.logged",
			Topic:         "hr.leave.audit.v1",
			Payload:       []byte(`{}`),
			Status:        kafka.OutboxStatusPending,
		})
	}
}

func TestGormStore_EffectsShareTheTransaction(t *testing.T) {
	t.Run("decision and outbox row commit together", func(t *testing.T) {
		store, db, mock := setupGormStoreWithDB(t)
		req := newPending("L1", "u2")
		req.Version = 1

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "leave_approvals" WHERE request_id = \$1`).
			WithArgs("L1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO outbox_events`).
			WithArgs("ev-1", "", "audit_log", "ev-1", "audit.logged", "hr.leave.audit.v1", []byte(`{}`), kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.Upsert(context.Background(), req, outboxEffect(kafka.NewOutboxRepository(db), "ev-1"))

		assert.NoError(t, err)
		assert.Equal(t, int64(2), req.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("new request and outbox row commit together", func(t *testing.T) {
		store, db, mock := setupGormStoreWithDB(t)
		req := newPending("L1", "u2")

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "leave_requests"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO outbox_events`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.Upsert(context.Background(), req, outboxEffect(kafka.NewOutboxRepository(db), "ev-1")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls the decision back", func(t *testing.T) {
		store, db, mock := setupGormStoreWithDB(t)
		req := newPending("L1", "u2")
		req.Version = 1

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "leave_approvals"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO outbox_events`).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := store.Upsert(context.Background(), req, outboxEffect(kafka.NewOutboxRepository(db), "ev-1"))

		assert.EqualError(t, err, "disk full")
		assert.Equal(t, int64(1), req.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("purge and outbox row commit together", func(t *testing.T) {
		store, db, mock := setupGormStoreWithDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "leave_approvals"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "leave_requests"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO outbox_events`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.DeleteByID(context.Background(), "L1", outboxEffect(kafka.NewOutboxRepository(db), "ev-2")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
