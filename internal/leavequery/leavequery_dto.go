package leavequery

import (
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
)

type ViewResponse struct {
	leave.LeaveResponse
	RequesterName string `json:"requester_name"`
}

type StepResponse struct {
	Role       string  `json:"role"`
	State      string  `json:"state"`
	ApproverID string  `json:"approver_id,omitempty"`
	DecidedAt  *string `json:"decided_at,omitempty"`
}

type DetailResponse struct {
	ViewResponse
	Progress []StepResponse `json:"progress"`
}

type LeaveTypesResponse struct {
	Types []string `json:"types"`
}

func toViewResponse(v View) ViewResponse {
	return ViewResponse{LeaveResponse: leave.ToResponse(v.Request), RequesterName: v.RequesterName}
}

func toViewListResponse(views []View) []ViewResponse {
	out := make([]ViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toViewResponse(v))
	}
	return out
}

func toDetailResponse(v View) DetailResponse {
	steps := Progress(v.Request)
	out := make([]StepResponse, len(steps))
	for i, s := range steps {
		out[i] = StepResponse{Role: string(s.Role), State: string(s.State), ApproverID: s.ApproverID}
		if s.DecidedAt != nil {
			at := s.DecidedAt.UTC().Format(time.RFC3339)
			out[i].DecidedAt = &at
		}
	}
	return DetailResponse{ViewResponse: toViewResponse(v), Progress: out}
}
