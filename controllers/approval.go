package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront-app/approval"
	"storefront-app/db"
	"storefront-app/models"
	"storefront-app/utils"
)

// GetPendingRegistrations returns the approval queue, oldest first.
func GetPendingRegistrations(c *fiber.Ctx) error {
	var requests []models.RegistrationRequest

	if err := db.DB.Where("status = ?", models.StatusPending).
		Order("created_at asc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get pending registrations",
		})
	}

	return c.JSON(requests)
}

// GetBlacklist returns deactivated accounts with their reasons.
func GetBlacklist(c *fiber.Ctx) error {
	var requests []models.RegistrationRequest

	if err := db.DB.Where("status = ?", models.StatusRejected).
		Order("deactivated_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get blacklist",
		})
	}

	return c.JSON(requests)
}

// ApproveRegistration moves a pending registration into the approved set.
// The applicant gets an email; the webhook gets a note. Both side effects
// are best-effort.
func ApproveRegistration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid registration ID",
		})
	}

	user, err := approval.Approve(db.DB, uint(id))
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := utils.SendApprovalEmail(user.Email, user.Name); err != nil {
		log.Printf("Failed to send approval email to %s: %v", user.Email, err)
	}
	utils.NotifyDiscord(
		"Registration approved",
		"An account has been approved.",
		utils.WebhookField{Name: "Email", Value: user.Email},
		utils.WebhookField{Name: "Discord", Value: user.Discord},
	)

	return c.JSON(fiber.Map{
		"message": "Registration approved",
		"user":    user,
	})
}

// RejectRegistration deletes a pending registration. The person can
// register again later; no blacklist entry is created.
func RejectRegistration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid registration ID",
		})
	}

	request, err := approval.Reject(db.DB, uint(id))
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	utils.NotifyDiscord(
		"Registration rejected",
		"A pending registration has been rejected.",
		utils.WebhookField{Name: "Email", Value: request.Email},
	)

	return c.SendStatus(fiber.StatusNoContent)
}

// DeactivateAccount blacklists an approved account. A non-empty reason is
// required and the acting admin is recorded on the retained record.
func DeactivateAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid account ID",
		})
	}

	type DeactivateInput struct {
		Reason string `json:"reason"`
	}
	input := new(DeactivateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	actorID := c.Locals("userID").(uint)

	request, err := approval.Deactivate(db.DB, uint(id), actorID, input.Reason)
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	utils.NotifyDiscord(
		"Account deactivated",
		"An account has been deactivated.",
		utils.WebhookField{Name: "Email", Value: request.Email},
		utils.WebhookField{Name: "Reason", Value: input.Reason},
	)

	return c.JSON(fiber.Map{
		"message": "Account deactivated",
		"request": request,
	})
}

// ReactivateAccount puts a blacklisted account back into the pending
// queue for a fresh review.
func ReactivateAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid account ID",
		})
	}

	request, err := approval.Reactivate(db.DB, uint(id))
	if err != nil {
		return c.Status(utils.StatusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	utils.NotifyDiscord(
		"Account reactivated",
		"A deactivated account is back in the approval queue.",
		utils.WebhookField{Name: "Email", Value: request.Email},
	)

	return c.JSON(fiber.Map{
		"message": "Account moved back to pending",
		"request": request,
	})
}
