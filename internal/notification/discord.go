package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
)

const (
	colorRed    = 16711680
	colorGreen  = 65280
	colorYellow = 16776960
)

type DiscordMessage struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

// SendDiscordMessage posts one embed to url. An empty url disables the
// notification.
func SendDiscordMessage(url string, embed DiscordEmbed) error {
	if url == "" {
		return nil
	}

	payload, err := json.Marshal(DiscordMessage{Embeds: []DiscordEmbed{embed}})
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send Discord notification, status code: %d", resp.StatusCode)
	}
	return nil
}

func SendDiscordErrorNotification(errorMessage string) error {
	return SendDiscordMessage(properties.DiscordErrorNotificationUrl(), DiscordEmbed{
		Title:       "🚨 Error Notification",
		Description: fmt.Sprintf("An error occurred: %s", errorMessage),
		Color:       colorRed,
	})
}

func SendDiscordWarnNotification(warnMessage string) error {
	return SendDiscordMessage(properties.DiscordErrorNotificationUrl(), DiscordEmbed{
		Title:       "⚠️ Warning Notification",
		Description: warnMessage,
		Color:       colorYellow,
	})
}

func SendDiscordSuccessNotification(successMessage string) error {
	return SendDiscordMessage(properties.DiscordSuccessNotificationUrl(), DiscordEmbed{
		Title:       "✅ Success Notification",
		Description: successMessage,
		Color:       colorGreen,
	})
}
