package models

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// RegistrationRequest is a self-registered account waiting for review.
// Rows with status "rejected" and a reason are the blacklist; rejecting a
// still-pending request deletes the row instead.
type RegistrationRequest struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name"`
	Email         string     `json:"email" gorm:"unique"`
	Discord       string     `json:"discord" gorm:"unique"`
	Password      string     `json:"-"`
	Status        string     `json:"status" gorm:"default:pending;index"`
	Reason        *string    `json:"reason,omitempty"`
	DeactivatedBy *uint      `json:"deactivated_by,omitempty"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
