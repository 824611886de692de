package dal

import (
	"log"

	"github.com/streadway/amqp"

	"marketplace-payout-api/internal/config"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

// Exchange and queue names for payout lifecycle events.
const (
	PayoutExchange    = "payout_events"
	QueuePayoutStatus = "payout_status"
	QueueEmailNotify  = "notification_email"
)

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	if err := ch.ExchangeDeclare(PayoutExchange, "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare(QueuePayoutStatus, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare %s failed: %v", QueuePayoutStatus, err)
	}
	if _, err := ch.QueueDeclare(QueueEmailNotify, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare %s failed: %v", QueueEmailNotify, err)
	}
	if err := ch.QueueBind(QueuePayoutStatus, "payout.#", PayoutExchange, false, nil); err != nil {
		log.Fatalf("queue bind %s failed: %v", QueuePayoutStatus, err)
	}
	if err := ch.QueueBind(QueueEmailNotify, "notification.email", PayoutExchange, false, nil); err != nil {
		log.Fatalf("queue bind %s failed: %v", QueueEmailNotify, err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
