package events

import "time"

const (
	AuditLoggedTopic     = "hr.leave.audit.v1"
	AuditLoggedEventType = "audit.logged"
)

// AuditLoggedEvent carries one audit entry from the API to the audit store.
type AuditLoggedEvent struct {
	EventType  string    `json:"event_type"`
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	OccurredAt time.Time `json:"occurred_at"`
}
