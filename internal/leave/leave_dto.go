package leave

import (
	"time"

	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
)

const DateLayout = "2006-01-02"

type ApprovalResponse struct {
	Step       int    `json:"step"`
	Role       string `json:"role"`
	ApproverID string `json:"approver_id"`
	Decision   string `json:"decision"`
	DecidedAt  string `json:"decided_at"`
}

type LeaveResponse struct {
	ID                  string             `json:"id"`
	RequesterID         string             `json:"requester_id"`
	DepartmentCode      string             `json:"department_code,omitempty"`
	LeaveType           string             `json:"leave_type"`
	StartDate           string             `json:"start_date"`
	EndDate             string             `json:"end_date"`
	Reason              string             `json:"reason"`
	ApprovalChain       []string           `json:"approval_chain"`
	Approvals           []ApprovalResponse `json:"approvals"`
	CurrentApproverRole string             `json:"current_approver_role"`
	Status              string             `json:"status"`
	Version             int64              `json:"version"`
	CreatedAt           string             `json:"created_at"`
}

func ToResponse(r LeaveRequest) LeaveResponse {
	chain := make([]string, len(r.ApprovalChain))
	for i, role := range r.ApprovalChain {
		chain[i] = string(role)
	}

	approvals := make([]ApprovalResponse, len(r.Approvals))
	for i, a := range r.Approvals {
		approvals[i] = ApprovalResponse{
			Step:       a.Step,
			Role:       string(a.Role),
			ApproverID: a.ApproverID,
			Decision:   string(a.Decision),
			DecidedAt:  a.DecidedAt.UTC().Format(time.RFC3339),
		}
	}

	return LeaveResponse{
		ID:                  r.ID,
		RequesterID:         r.RequesterID,
		DepartmentCode:      r.DepartmentCode,
		LeaveType:           r.LeaveType,
		StartDate:           r.StartDate.Format(DateLayout),
		EndDate:             r.EndDate.Format(DateLayout),
		Reason:              r.Reason,
		ApprovalChain:       chain,
		Approvals:           approvals,
		CurrentApproverRole: string(r.CurrentApproverRole),
		Status:              string(r.Status),
		Version:             r.Version,
		CreatedAt:           r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToListResponse(rows []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToResponse(r))
	}
	return out
}

// ParseDate parses a calendar date as UTC midnight.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t.UTC(), nil
}
