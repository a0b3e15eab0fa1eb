package models

import (
	"time"
)

// AdminGrant marks a user as a platform administrator. Grants are never
// deleted; revocation sets RemovedAt so the audit trail survives.
type AdminGrant struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index"`
	User      User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GrantedBy uint       `json:"granted_by"`
	RemovedAt *time.Time `json:"removed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
