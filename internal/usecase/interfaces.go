package usecase

import (
	"context"

	"github.com/fisiomuv/preventa-api/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}

// EmailService is the direct-send fallback used when no broker is configured.
// The broker-backed worker speaks the same interface.
type EmailService interface {
	NotifyOperator(payload queue.NotificationPayload) error
	NotifyClient(payload queue.NotificationPayload) error
}
