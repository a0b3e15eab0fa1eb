package models

import (
	"time"
)

// UserRole assigns a custom role to a user. The composite unique index is
// what makes a duplicate assignment fail instead of silently no-op.
type UserRole struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_role"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoleID    uint      `json:"role_id" gorm:"uniqueIndex:idx_user_role"`
	Role      Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time `json:"created_at"`
}
