package leavequery

import (
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
)

type StepState string

const (
	StepApproved StepState = "APPROVED"
	StepRejected StepState = "REJECTED"
	StepPending  StepState = "PENDING"
	StepWaiting  StepState = "WAITING"
)

type Step struct {
	Role       registry.Role
	State      StepState
	ApproverID string
	DecidedAt  *time.Time
}

// Progress lays the chain out step by step. Decided steps carry their
// decision, the step under review is PENDING and the rest are WAITING,
// including steps left behind by a rejection.
func Progress(req leave.LeaveRequest) []Step {
	steps := make([]Step, len(req.ApprovalChain))
	for i, role := range req.ApprovalChain {
		step := Step{Role: role, State: StepWaiting}
		switch {
		case i < len(req.Approvals):
			a := req.Approvals[i]
			decidedAt := a.DecidedAt
			step.State = StepState(a.Decision)
			step.ApproverID = a.ApproverID
			step.DecidedAt = &decidedAt
		case req.Status == leave.StatusPending && req.CurrentApproverRole == role:
			step.State = StepPending
		}
		steps[i] = step
	}
	return steps
}
