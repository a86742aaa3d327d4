package approval

import (
	"time"

	approvalerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/approval/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
)

// NewRequest builds a request waiting on the first role of chain.
func NewRequest(id string, in SubmitInput, chain registry.RoleList, now time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:                  id,
		RequesterID:         in.RequesterID,
		DepartmentCode:      in.DepartmentCode,
		LeaveType:           in.LeaveType,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		Reason:              in.Reason,
		ApprovalChain:       chain.Clone(),
		Approvals:           []leave.Approval{},
		CurrentApproverRole: chain[0],
		Status:              leave.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Advance records actorID's decision on the current step and moves the
// request forward. A rejection ends the chain at once; approving the last
// step approves the request. req is not modified.
//
// Authorization is the caller's job; Advance only guards the state machine.
func Advance(req leave.LeaveRequest, actorID string, approved bool, now time.Time) (leave.LeaveRequest, error) {
	if req.Status != leave.StatusPending {
		return req, approvalerrors.ErrAlreadyFinalized
	}

	step := req.ApprovalChain.IndexOf(req.CurrentApproverRole)
	if step < 0 || step != len(req.Approvals) {
		return req, approvalerrors.ErrStepNotInChain
	}

	next := req.Clone()
	decision := leave.DecisionApproved
	if !approved {
		decision = leave.DecisionRejected
	}
	next.Approvals = append(next.Approvals, leave.Approval{
		RequestID:  req.ID,
		Step:       step,
		Role:       req.CurrentApproverRole,
		ApproverID: actorID,
		Decision:   decision,
		DecidedAt:  now.UTC(),
	})

	switch {
	case !approved:
		next.Status = leave.StatusRejected
		next.CurrentApproverRole = registry.RoleDone
	case step == len(req.ApprovalChain)-1:
		next.Status = leave.StatusApproved
		next.CurrentApproverRole = registry.RoleDone
	default:
		next.CurrentApproverRole = req.ApprovalChain[step+1]
	}
	next.UpdatedAt = now
	return next, nil
}
