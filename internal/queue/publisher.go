package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes audit events to RabbitMQ. Each publish opens a
// short-lived connection; errors are logged and returned so callers can
// ignore them without interrupting the request flow.
type AMQPPublisher struct {
	url string
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url}
}

// Publish ships one event to the catalog.audit queue. The queue is
// declared durable and messages are marked persistent so audit records
// survive a broker restart.
func (p *AMQPPublisher) Publish(ev AuditEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("audit: dial broker failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("audit: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(auditQueueName, true, false, false, false, nil); err != nil {
		log.Printf("audit: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("audit: marshal event failed: %v", err)
		return err
	}

	err = ch.Publish("", auditQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("audit: publish failed: %v", err)
	}
	return err
}
