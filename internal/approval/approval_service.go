// Package approval moves leave requests through their department's chain
// of approver roles.
package approval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	approvalerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/approval/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/audit"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/metrics"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitInput struct {
	RequesterID    string
	DepartmentCode string
	LeaveType      string
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
}

// ValidationPolicy switches the optional submission checks.
type ValidationPolicy struct {
	RequireOrderedDates bool
	// RejectOverlaps refuses a submission whose range meets a pending or
	// approved request of the same requester.
	RejectOverlaps bool
}

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, in SubmitInput) (leave.LeaveRequest, error)
	Decide(ctx context.Context, requestID, actorID string, approved bool) (leave.LeaveRequest, error)
	Approve(ctx context.Context, requestID, actorID string) (leave.LeaveRequest, error)
	Reject(ctx context.Context, requestID, actorID string) (leave.LeaveRequest, error)
	// Purge deletes a request outright. Route permissions decide who may call it.
	Purge(ctx context.Context, requestID, actorID string) error
}

type service struct {
	store    leave.Store
	registry registry.Registry
	audit    audit.Sink
	policy   ValidationPolicy
	metrics  *metrics.Service
	locks    *keyedMutex
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
}

func NewService(
	store leave.Store,
	reg registry.Registry,
	sink audit.Sink,
	policy ValidationPolicy,
	metricsSvc *metrics.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{
		store:    store,
		registry: reg,
		audit:    sink,
		policy:   policy,
		metrics:  metricsSvc,
		locks:    newKeyedMutex(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
		logger:   l,
	}
}

func (s *service) Submit(ctx context.Context, in SubmitInput) (leave.LeaveRequest, error) {
	s.logger.Debug("submit leave requested",
		zap.String("requester_id", in.RequesterID),
		zap.String("department_code", in.DepartmentCode),
		zap.String("leave_type", in.LeaveType),
	)

	if in.RequesterID == "" {
		return leave.LeaveRequest{}, approvalerrors.ErrMissingActor
	}
	if s.policy.RequireOrderedDates && in.EndDate.Before(in.StartDate) {
		return leave.LeaveRequest{}, leaveerrors.ErrInvalidDateRange
	}

	chain, err := s.registry.ChainFor(ctx, in.DepartmentCode)
	if err != nil {
		s.logger.Warn("submit leave chain lookup failed",
			zap.String("department_code", in.DepartmentCode),
			zap.Error(err),
		)
		return leave.LeaveRequest{}, err
	}
	if len(chain) == 0 {
		return leave.LeaveRequest{}, approvalerrors.ErrNoApprovalChainConfigured
	}

	if s.policy.RejectOverlaps {
		if err := s.checkOverlap(ctx, in); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	req := NewRequest(s.newID(), in, chain, s.now())
	entry := audit.Entry{
		ActorID: in.RequesterID,
		Action:  audit.ActionLeaveRequest,
		Details: fmt.Sprintf("Requested %s from %s", in.LeaveType, in.StartDate.Format(leave.DateLayout)),
	}
	if err := s.store.Upsert(ctx, &req, s.audited(entry)...); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return leave.LeaveRequest{}, err
	}

	s.metrics.LeaveSubmitted(in.DepartmentCode)

	s.logger.Info("submit leave success",
		zap.String("leave_id", req.ID),
		zap.String("requester_id", req.RequesterID),
		zap.String("current_approver_role", string(req.CurrentApproverRole)),
	)
	return req, nil
}

func (s *service) checkOverlap(ctx context.Context, in SubmitInput) error {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("submit leave overlap check failed", zap.Error(err))
		return err
	}
	for _, existing := range all {
		if existing.RequesterID != in.RequesterID || existing.Status == leave.StatusRejected {
			continue
		}
		if existing.Overlaps(in.StartDate, in.EndDate) {
			s.logger.Warn("submit leave overlap detected",
				zap.String("requester_id", in.RequesterID),
				zap.String("existing_id", existing.ID),
			)
			return leaveerrors.ErrLeaveOverlap
		}
	}
	return nil
}

func (s *service) Decide(ctx context.Context, requestID, actorID string, approved bool) (leave.LeaveRequest, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", requestID),
		zap.String("actor_id", actorID),
		zap.Bool("approved", approved),
	)
	if actorID == "" {
		return leave.LeaveRequest{}, approvalerrors.ErrMissingActor
	}

	unlock := s.locks.Lock(requestID)
	defer unlock()

	current, err := s.store.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if current.Status.Terminal() {
		s.logger.Warn("decide leave on finalized request",
			zap.String("leave_id", requestID),
			zap.String("status", string(current.Status)),
		)
		return leave.LeaveRequest{}, approvalerrors.ErrAlreadyFinalized
	}

	roles, err := s.registry.RolesOf(ctx, actorID)
	if err != nil {
		s.logger.Error("decide leave role lookup failed", zap.String("actor_id", actorID), zap.Error(err))
		return leave.LeaveRequest{}, err
	}
	if !registry.Authorize(roles, current.CurrentApproverRole) {
		s.logger.Warn("decide leave not authorized",
			zap.String("leave_id", requestID),
			zap.String("actor_id", actorID),
			zap.String("current_approver_role", string(current.CurrentApproverRole)),
		)
		return leave.LeaveRequest{}, approvalerrors.ErrNotAuthorized
	}

	next, err := Advance(*current, actorID, approved, s.now())
	if err != nil {
		s.logger.Error("decide leave transition failed", zap.String("leave_id", requestID), zap.Error(err))
		return leave.LeaveRequest{}, err
	}

	action := audit.ActionApproveLeave
	decision := leave.DecisionApproved
	if !approved {
		action = audit.ActionRejectLeave
		decision = leave.DecisionRejected
	}
	entry := audit.Entry{
		ActorID: actorID,
		Action:  action,
		Details: fmt.Sprintf("Leave ID %s decision made.", requestID),
	}

	if err := s.store.Upsert(ctx, &next, s.audited(entry)...); err != nil {
		if errors.Is(err, leaveerrors.ErrConcurrentModification) {
			s.metrics.DecisionConflict()
			s.logger.Warn("decide leave lost a concurrent update", zap.String("leave_id", requestID))
		} else {
			s.logger.Error("decide leave persist failed", zap.String("leave_id", requestID), zap.Error(err))
		}
		return leave.LeaveRequest{}, err
	}

	s.metrics.LeaveDecided(string(decision), string(next.Status))

	s.logger.Info("decide leave success",
		zap.String("leave_id", requestID),
		zap.String("actor_id", actorID),
		zap.String("status", string(next.Status)),
		zap.String("current_approver_role", string(next.CurrentApproverRole)),
	)
	return next, nil
}

func (s *service) Approve(ctx context.Context, requestID, actorID string) (leave.LeaveRequest, error) {
	return s.Decide(ctx, requestID, actorID, true)
}

func (s *service) Reject(ctx context.Context, requestID, actorID string) (leave.LeaveRequest, error) {
	return s.Decide(ctx, requestID, actorID, false)
}

func (s *service) Purge(ctx context.Context, requestID, actorID string) error {
	unlock := s.locks.Lock(requestID)
	defer unlock()

	entry := audit.Entry{
		ActorID: actorID,
		Action:  audit.ActionDeleteLeave,
		Details: fmt.Sprintf("Leave ID %s deleted.", requestID),
	}
	if err := s.store.DeleteByID(ctx, requestID, s.audited(entry)...); err != nil {
		if !errors.Is(err, leaveerrors.ErrLeaveNotFound) {
			s.logger.Error("purge leave failed", zap.String("leave_id", requestID), zap.Error(err))
		}
		return err
	}

	s.logger.Info("purge leave success", zap.String("leave_id", requestID), zap.String("actor_id", actorID))
	return nil
}

// audited turns entry into a store effect, so the audit record and the
// change it describes are persisted together or not at all.
func (s *service) audited(entry audit.Entry) []leave.Effect {
	if s.audit == nil {
		return nil
	}
	appendEntry := audit.InTx(s.audit, entry)
	return []leave.Effect{func(ctx context.Context, tx *sql.Tx) error {
		if err := appendEntry(ctx, tx); err != nil {
			s.logger.Warn("audit append failed",
				zap.String("action", entry.Action),
				zap.String("actor_id", entry.ActorID),
				zap.Error(err),
			)
			return err
		}
		return nil
	}}
}
