package models

import (
	"time"
)

// History actions
const (
	ActionAssigned  = "assigned"
	ActionStarted   = "started"
	ActionCompleted = "completed"
	ActionCancelled = "cancelled"
)

// ServiceHistory is the append-only audit trail of status-changing
// actions on a booking. Rows are never updated or deleted on their own.
type ServiceHistory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ServiceID   uint   `gorm:"index;not null" json:"service_id"`
	Action      string `gorm:"not null" json:"action"` // assigned, started, completed, cancelled
	PerformedBy *uint  `json:"performed_by"`
	Notes       string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (ServiceHistory) TableName() string {
	return "service_history"
}
