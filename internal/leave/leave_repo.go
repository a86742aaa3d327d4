package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type gormStore struct {
	db     *gorm.DB
	now    func() time.Time
	logger *zap.Logger
}

// NewGormStore returns a Store over the leave_requests and leave_approvals
// tables.
func NewGormStore(db *gorm.DB, logger ...*zap.Logger) Store {
	l := zap.L().Named("leave.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.store")
	}
	return &gormStore{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func orderedApprovals(db *gorm.DB) *gorm.DB {
	return db.Order("step ASC")
}

func (r *gormStore) GetAll(ctx context.Context) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Approvals", orderedApprovals).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("list leave requests failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *gormStore) GetByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var row LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Approvals", orderedApprovals).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &row, nil
}

func (r *gormStore) Upsert(ctx context.Context, req *LeaveRequest, effects ...Effect) error {
	now := r.now()
	next := req.Version + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Version == 0 {
			row := req.Clone()
			row.Version = next
			row.UpdatedAt = now
			if row.CreatedAt.IsZero() {
				row.CreatedAt = now
			}
			if err := tx.Omit("Approvals").Create(&row).Error; err != nil {
				return err
			}
			if err := insertApprovals(tx, req.ID, req.Approvals); err != nil {
				return err
			}
			if err := runTxEffects(ctx, tx, effects); err != nil {
				return err
			}
			req.CreatedAt = row.CreatedAt
			return nil
		}

		res := tx.Model(&LeaveRequest{}).
			Where("id = ? AND version = ?", req.ID, req.Version).
			Updates(map[string]any{
				"department_code":       req.DepartmentCode,
				"leave_type":            req.LeaveType,
				"start_date":            req.StartDate,
				"end_date":              req.EndDate,
				"reason":                req.Reason,
				"approval_chain":        req.ApprovalChain,
				"current_approver_role": req.CurrentApproverRole,
				"status":                req.Status,
				"version":               next,
				"updated_at":            now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return leaveerrors.ErrConcurrentModification
		}

		if err := tx.Where("request_id = ?", req.ID).Delete(&Approval{}).Error; err != nil {
			return err
		}
		if err := insertApprovals(tx, req.ID, req.Approvals); err != nil {
			return err
		}
		return runTxEffects(ctx, tx, effects)
	})
	if err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, leaveerrors.ErrConcurrentModification) {
			r.logger.Error("upsert leave request failed", zap.String("leave_id", req.ID), zap.Error(err))
		}
		return mapped
	}

	req.Version = next
	req.UpdatedAt = now
	return nil
}

func insertApprovals(tx *gorm.DB, requestID string, approvals []Approval) error {
	if len(approvals) == 0 {
		return nil
	}
	rows := make([]Approval, len(approvals))
	for i, a := range approvals {
		a.RequestID = requestID
		rows[i] = a
	}
	return tx.Create(&rows).Error
}

func (r *gormStore) DeleteByID(ctx context.Context, id string, effects ...Effect) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&Approval{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&LeaveRequest{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return leaveerrors.ErrLeaveNotFound
		}
		return runTxEffects(ctx, tx, effects)
	})
}

var errNoSQLTx = errors.New("leave store: transaction does not expose *sql.Tx")

// runTxEffects hands effects the *sql.Tx under gorm's transaction so raw
// SQL repositories can join it through WithTx.
func runTxEffects(ctx context.Context, tx *gorm.DB, effects []Effect) error {
	if len(effects) == 0 {
		return nil
	}
	sqlTx, ok := tx.Statement.ConnPool.(*sql.Tx)
	if !ok {
		return errNoSQLTx
	}
	return runEffects(ctx, sqlTx, effects)
}
