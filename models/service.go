package models

import (
	"time"
)

// Service types
const (
	TypeCleaning     = "cleaning"
	TypeRepair       = "repair"
	TypeInstallation = "installation"
	TypeGasTopUp     = "gas_top_up"
)

// Service statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Service is a booking: a scheduled unit of work for a customer,
// optionally assigned to a technician.
type Service struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CustomerID    uint    `gorm:"index;not null" json:"customer_id"`
	ServiceType   string  `gorm:"not null" json:"service_type"` // cleaning, repair, installation, gas_top_up
	Description   string  `json:"description"`
	ScheduledDate string  `gorm:"not null" json:"scheduled_date"` // YYYY-MM-DD
	Status        string  `gorm:"default:'pending'" json:"status"` // pending, in_progress, completed, cancelled
	TechnicianID  *uint   `gorm:"index" json:"technician_id"`
	TotalAmount   float64 `gorm:"type:decimal(10,2);default:0.0" json:"total_amount"`
	Notes         string  `json:"notes"`

	History []ServiceHistory `gorm:"foreignKey:ServiceID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
