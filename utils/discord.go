package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

// WebhookField is one name/value pair on a notification embed.
type WebhookField struct {
	Name  string
	Value string
}

// ParseWebhookURL splits a Discord webhook URL into its id and token.
// Accepts the standard https://discord.com/api/webhooks/<id>/<token> form.
func ParseWebhookURL(url string) (string, string, error) {
	trimmed := strings.TrimSuffix(url, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return "", "", fmt.Errorf("not a discord webhook URL: %s", url)
	}
	id := parts[len(parts)-2]
	token := parts[len(parts)-1]
	if id == "" || token == "" {
		return "", "", fmt.Errorf("not a discord webhook URL: %s", url)
	}
	return id, token, nil
}

// NotifyDiscord posts an embed to the storefront webhook from a goroutine.
// This is fire-and-forget: delivery failures are logged and swallowed, and
// no caller waits on the result.
func NotifyDiscord(title, description string, fields ...WebhookField) {
	go func() {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Error loading .env file. Using environment variables directly.")
		}

		url := os.Getenv("DISCORD_WEBHOOK_URL")
		if url == "" {
			log.Println("DISCORD_WEBHOOK_URL is not set, skipping notification")
			return
		}

		id, token, err := ParseWebhookURL(url)
		if err != nil {
			log.Printf("Failed to parse webhook URL: %v", err)
			return
		}

		session, err := discordgo.New("")
		if err != nil {
			log.Printf("Failed to create Discord session: %v", err)
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       title,
			Description: description,
		}
		for _, field := range fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  field.Name,
				Value: field.Value,
			})
		}

		_, err = session.WebhookExecute(id, token, false, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embed},
		})
		if err != nil {
			log.Printf("Failed to send Discord notification %q: %v", title, err)
		}
	}()
}
