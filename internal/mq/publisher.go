package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"marketplace-payout-api/internal/dal"
)

// Events are fire-and-forget: publish failures are logged and never
// propagated into the state transition that produced them.

type BatchCreatedEvent struct {
	BatchID   uint64 `json:"batch_id"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
	CreatedAt int64  `json:"created_at"`
}

type PayoutStatusEvent struct {
	PayoutID    uint64 `json:"payout_id"`
	BatchID     uint64 `json:"batch_id,omitempty"`
	SellerID    uint64 `json:"seller_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ExternalRef string `json:"external_ref,omitempty"`
	Reason      string `json:"reason,omitempty"`
	At          int64  `json:"at"`
}

type EmailNotification struct {
	SellerID uint64 `json:"seller_id"`
	Template string `json:"template"`
	Subject  string `json:"subject"`
	Ref      string `json:"ref"`
}

func PublishBatchCreated(evt BatchCreatedEvent) {
	publish("payout.batch.created", evt)
}

func PublishPayoutCreated(evt PayoutStatusEvent) {
	publish("payout.created", evt)
}

func PublishPayoutPaid(evt PayoutStatusEvent) {
	publish("payout.paid", evt)
}

func PublishPayoutFailed(evt PayoutStatusEvent) {
	publish("payout.failed", evt)
}

func PublishEmailNotification(n EmailNotification) {
	publish("notification.email", n)
}

func publish(routingKey string, v interface{}) {
	if dal.RabbitCh == nil {
		return
	}
	b, _ := json.Marshal(v)
	err := dal.RabbitCh.Publish(
		dal.PayoutExchange,
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
}
