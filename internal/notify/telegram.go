// Package notify sends best-effort ops alerts to a telegram chat.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"marketplace-payout-api/internal/logger"
)

var client = &http.Client{Timeout: 5 * time.Second}

func init() {
	_ = godotenv.Load()
}

type message struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
	Parse  string `json:"parse_mode"`
}

// Send posts one markdown message to the chat. Requires TELEGRAM_BOT_TOKEN
// in the environment.
func Send(chatID string, content string) error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return fmt.Errorf("missing TELEGRAM_BOT_TOKEN in env")
	}

	body, _ := json.Marshal(message{ChatID: chatID, Text: content, Parse: "Markdown"})
	resp, err := client.Post(
		fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram responded %s", resp.Status)
	}
	return nil
}

// Async fires an alert without blocking the caller; failures are logged and
// swallowed. Alerting must never affect a payout transition.
func Async(chatID string, content string) {
	go func() {
		if err := Send(chatID, content); err != nil {
			logger.Payout().Warnf("telegram alert failed: %v", err)
		}
	}()
}
