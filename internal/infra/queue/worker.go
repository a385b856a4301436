package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fisiomuv/preventa-api/internal/infra/http/middleware"
	"github.com/fisiomuv/preventa-api/pkg/logging"
)

// EmailNotifier is what the worker needs from the mail layer.
type EmailNotifier interface {
	NotifyOperator(payload NotificationPayload) error
	NotifyClient(payload NotificationPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  EmailNotifier
}

func NewWorker(ch *amqp.Channel, mailer EmailNotifier) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

// Start consumes notification payloads until the channel closes. Operator
// alerts that fail are dead-lettered for later inspection; client
// confirmations that fail are logged and dropped, a transient mail error must
// never look like a failed signup.
func (w *Worker) Start(queueName string) {
	log := logging.GetLogger()

	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.WithError(err).Fatal("failed to register notification consumer")
	}

	log.WithField("queue", queueName).Info("notification worker started")

	for d := range msgs {
		w.handleDelivery(d)
	}
}

// handleDelivery routes one payload to the mail sender and settles the
// delivery. A failed operator alert is dead-lettered; a failed client
// confirmation is acked anyway.
func (w *Worker) handleDelivery(d amqp.Delivery) {
	log := logging.GetLogger()

	var payload NotificationPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.WithError(err).Error("malformed notification payload, dropping")
		d.Nack(false, false)
		return
	}

	entry := log.WithFields(map[string]interface{}{
		"notification_id": payload.ID,
		"kind":            payload.Kind,
		"lead_id":         payload.LeadID,
	})

	switch payload.Kind {
	case KindOperator:
		if err := w.Mailer.NotifyOperator(payload); err != nil {
			entry.WithError(err).Error("operator notification failed, dead-lettering")
			middleware.RecordNotificationError(payload.Kind)
			d.Nack(false, false)
			return
		}

	case KindClient:
		if err := w.Mailer.NotifyClient(payload); err != nil {
			// Swallowed: the lead is already stored and answered.
			entry.WithError(err).Error("client confirmation failed")
			middleware.RecordNotificationError(payload.Kind)
		}

	default:
		entry.Warn("unknown notification kind, dropping")
	}

	d.Ack(false)
	entry.Debug("notification processed")
}
