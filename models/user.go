package models

import (
	"time"

	"aircond-backend/utils"

	"gorm.io/gorm"
)

// User is a staff or admin account. Technicians are ordinary users
// referenced from services.technician_id.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`
	Role         string `gorm:"type:varchar(20);default:'staff'" json:"role"` // admin, staff

	// Plaintext password, only set when creating a user; hashed in the
	// BeforeCreate hook and never persisted or serialized.
	Password string `gorm:"-" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Hash the plaintext password before the row is written
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.PasswordHash == "" && u.Password != "" {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.PasswordHash = hashed
	}
	return
}
