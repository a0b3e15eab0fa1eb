package approval

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront-app/models"
)

// Sentinel errors for the controller layer to map onto HTTP statuses.
// Everything else coming out of this package is a backing-store failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation")
)

// SubmitInput is a self-registration request.
type SubmitInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Discord  string `json:"discord"`
	Password string `json:"password"`
}

// Submit creates a pending registration. Email and discord handle are
// checked against the pending and approved sets in sequence; the first
// collision wins and nothing is written.
func Submit(database *gorm.DB, input SubmitInput) (*models.RegistrationRequest, error) {
	if input.Email == "" || input.Discord == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	var existingRequest models.RegistrationRequest
	if database.Where("email = ?", input.Email).First(&existingRequest).RowsAffected > 0 {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	var existingUser models.User
	if database.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if database.Where("discord = ?", input.Discord).First(&models.RegistrationRequest{}).RowsAffected > 0 {
		return nil, fmt.Errorf("%w: discord handle already registered", ErrConflict)
	}
	if database.Where("discord = ?", input.Discord).First(&models.User{}).RowsAffected > 0 {
		return nil, fmt.Errorf("%w: discord handle already registered", ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	request := models.RegistrationRequest{
		Name:     input.Name,
		Email:    input.Email,
		Discord:  input.Discord,
		Password: string(hashed),
		Status:   models.StatusPending,
	}
	if err := database.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Approve moves a pending registration into the approved set, preserving
// its identifier, credential and profile. The status guard on the update
// means a second approval of the same request finds zero rows and fails
// with ErrNotFound instead of duplicating the account.
func Approve(database *gorm.DB, requestID uint) (*models.User, error) {
	var user models.User
	err := database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RegistrationRequest{}).
			Where("id = ? AND status = ?", requestID, models.StatusPending).
			Update("status", models.StatusApproved)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: no pending registration with id %d", ErrNotFound, requestID)
		}

		var request models.RegistrationRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			return err
		}

		user = models.User{
			ID:       request.ID,
			Name:     request.Name,
			Email:    request.Email,
			Discord:  request.Discord,
			Password: request.Password,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Reject deletes a pending registration outright. No blacklist entry is
// created; the person is free to register again.
func Reject(database *gorm.DB, requestID uint) (*models.RegistrationRequest, error) {
	var request models.RegistrationRequest
	if database.Where("id = ? AND status = ?", requestID, models.StatusPending).
		First(&request).RowsAffected == 0 {
		return nil, fmt.Errorf("%w: no pending registration with id %d", ErrNotFound, requestID)
	}

	result := database.Where("id = ? AND status = ?", requestID, models.StatusPending).
		Delete(&models.RegistrationRequest{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: no pending registration with id %d", ErrNotFound, requestID)
	}
	return &request, nil
}

// Deactivate removes an approved account and records it on the blacklist
// with a reason and the acting admin. Any active admin grant is stripped
// as part of the same transaction.
func Deactivate(database *gorm.DB, userID uint, actorID uint, reason string) (*models.RegistrationRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: deactivation reason is required", ErrValidation)
	}

	var request models.RegistrationRequest
	err := database.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no approved account with id %d", ErrNotFound, userID)
			}
			return err
		}

		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&models.RegistrationRequest{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"status":         models.StatusRejected,
				"reason":         reason,
				"deactivated_by": actorID,
				"deactivated_at": now,
			}).Error; err != nil {
			return err
		}

		// Deactivated accounts must not retain admin access.
		if err := tx.Model(&models.AdminGrant{}).
			Where("user_id = ? AND removed_at IS NULL", userID).
			Update("removed_at", now).Error; err != nil {
			return err
		}

		return tx.First(&request, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Reactivate puts a blacklisted account back into the pending queue. The
// reason is cleared; who deactivated it and when stays on the row until a
// future deactivation overwrites it.
func Reactivate(database *gorm.DB, requestID uint) (*models.RegistrationRequest, error) {
	result := database.Model(&models.RegistrationRequest{}).
		Where("id = ? AND status = ?", requestID, models.StatusRejected).
		Updates(map[string]interface{}{
			"status": models.StatusPending,
			"reason": nil,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: no deactivated account with id %d", ErrNotFound, requestID)
	}

	var request models.RegistrationRequest
	if err := database.First(&request, requestID).Error; err != nil {
		return nil, err
	}
	return &request, nil
}
