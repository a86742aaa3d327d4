package leave

import (
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further decision can be recorded.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// LeaveRequest is one employee's request moving through its approval chain.
// ApprovalChain is fixed at creation; later template edits do not touch it.
type LeaveRequest struct {
	ID             string `gorm:"type:varchar(36);primaryKey"`
	RequesterID    string `gorm:"type:varchar(64);not null;index:idx_leave_requests_requester"`
	DepartmentCode string `gorm:"type:varchar(20)"`

	LeaveType string    `gorm:"type:varchar(50);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text"`

	ApprovalChain       registry.RoleList `gorm:"type:text;not null"`
	Approvals           []Approval        `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	CurrentApproverRole registry.Role     `gorm:"type:varchar(30);not null"`
	Status              Status            `gorm:"type:varchar(20);not null;index:idx_leave_requests_status"`

	// Version is bumped by every successful store write.
	Version int64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"index:idx_leave_requests_created"`
	UpdatedAt time.Time
}

// Approval records one decision. Step is the chain index it answered.
type Approval struct {
	RequestID  string        `gorm:"type:varchar(36);primaryKey"`
	Step       int           `gorm:"primaryKey;autoIncrement:false"`
	Role       registry.Role `gorm:"type:varchar(30);not null"`
	ApproverID string        `gorm:"type:varchar(64);not null"`
	Decision   Decision      `gorm:"type:varchar(20);not null"`
	DecidedAt  time.Time     `gorm:"not null"`
}

func (Approval) TableName() string { return "leave_approvals" }

// Clone returns a deep copy so callers never share slices with a store.
func (r LeaveRequest) Clone() LeaveRequest {
	out := r
	out.ApprovalChain = r.ApprovalChain.Clone()
	if r.Approvals != nil {
		out.Approvals = make([]Approval, len(r.Approvals))
		copy(out.Approvals, r.Approvals)
	}
	return out
}

// Overlaps reports whether the inclusive date ranges intersect.
func (r LeaveRequest) Overlaps(start, end time.Time) bool {
	return !r.EndDate.Before(start) && !r.StartDate.After(end)
}
