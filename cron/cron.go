package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"storefront-app/db"
	"storefront-app/models"
	"storefront-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for the daily
// pending-registration reminder
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Every morning at 9, nudge the admins about the approval queue
	_, err := c.AddFunc("0 9 * * *", sendPendingQueueReminder)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for registration reminders")
}

// sendPendingQueueReminder posts the queue size to the webhook when there
// is something waiting
func sendPendingQueueReminder() {
	var count int64
	err := db.DB.Model(&models.RegistrationRequest{}).
		Where("status = ?", models.StatusPending).
		Count(&count).Error
	if err != nil {
		log.Printf("Error counting pending registrations: %v", err)
		return
	}

	if count == 0 {
		return
	}

	utils.NotifyDiscord(
		"Pending registrations",
		fmt.Sprintf("There are %d registrations waiting for review.", count),
	)
	log.Printf("Sent pending-queue reminder (%d waiting)", count)
}
