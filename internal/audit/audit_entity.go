package audit

import "time"

// Log is a persisted audit entry. ID is the id of the event that carried it,
// so redelivered events collide on the primary key.
type Log struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	ActorID   string    `gorm:"type:varchar(64);not null;index"`
	Action    string    `gorm:"type:varchar(40);not null"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index:idx_audit_logs_created"`
}

func (Log) TableName() string { return "audit_logs" }

type LogResponse struct {
	ID        string `json:"id"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

func toResponse(l Log) LogResponse {
	return LogResponse{
		ID:        l.ID,
		ActorID:   l.ActorID,
		Action:    l.Action,
		Details:   l.Details,
		Timestamp: l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
