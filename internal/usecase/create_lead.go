package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fisiomuv/preventa-api/internal/entity"
	"github.com/fisiomuv/preventa-api/internal/infra/queue"
	"github.com/fisiomuv/preventa-api/pkg/logging"
)

type CreateLeadUseCase struct {
	Repo          entity.LeadRepositoryInterface
	Queue         QueueProducerInterface
	EmailService  EmailService
	PhoneRequired bool
}

func NewCreateLeadUseCase(
	repo entity.LeadRepositoryInterface,
	producer QueueProducerInterface,
	emailService EmailService,
	phoneRequired bool,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:          repo,
		Queue:         producer,
		EmailService:  emailService,
		PhoneRequired: phoneRequired,
	}
}

// Execute runs the submission pipeline: validate, duplicate check, persist,
// notification handoff. Notifications never affect the returned result.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if validationErrors := ValidateCreateLeadInput(input, uc.PhoneRequired); len(validationErrors) > 0 {
		return nil, validationErrors
	}

	exists, err := uc.Repo.ExistsByEmailAndInterest(ctx, input.Email, input.Interest)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to check for existing lead: " + err.Error(),
		}
	}
	if exists {
		return nil, ErrDuplicateLead
	}

	lead := entity.NewLead(
		input.Email,
		input.Name,
		input.Phone,
		input.Interest,
		input.Origin,
		input.Timestamp,
		input.UTM,
		input.Referer,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		// A concurrent submission can slip past the pre-check; the unique
		// index turns that into a duplicate, not a server fault.
		if errors.Is(err, entity.ErrLeadAlreadyExists) {
			return nil, ErrDuplicateLead
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	logging.GetLogger().WithFields(map[string]interface{}{
		"lead_id":  lead.ID,
		"email":    lead.Email,
		"interest": lead.Interest,
	}).Info("lead stored")

	uc.dispatchNotifications(ctx, lead)

	return &CreateLeadOutput{
		ID:      lead.ID,
		Message: "Lead registrado correctamente",
	}, nil
}

// dispatchNotifications hands the operator alert and the client confirmation
// off to the broker, or fires them on a goroutine when no broker is
// configured. Failures are logged and swallowed either way.
func (uc *CreateLeadUseCase) dispatchNotifications(ctx context.Context, lead *entity.Lead) {
	log := logging.GetLogger()

	payloads := []queue.NotificationPayload{
		notificationFor(queue.KindOperator, lead),
		notificationFor(queue.KindClient, lead),
	}

	if uc.Queue != nil {
		for _, p := range payloads {
			if err := uc.Queue.PublishNotification(ctx, p); err != nil {
				log.WithError(err).WithField("lead_id", lead.ID).
					Error("failed to enqueue notification")
			}
		}
		return
	}

	if uc.EmailService == nil {
		log.WithField("lead_id", lead.ID).Debug("no notifier configured, skipping emails")
		return
	}

	go func() {
		if err := uc.EmailService.NotifyOperator(payloads[0]); err != nil {
			log.WithError(err).WithField("lead_id", lead.ID).Error("operator notification failed")
		}
		if err := uc.EmailService.NotifyClient(payloads[1]); err != nil {
			log.WithError(err).WithField("lead_id", lead.ID).Error("client confirmation failed")
		}
	}()
}

func notificationFor(kind string, lead *entity.Lead) queue.NotificationPayload {
	return queue.NotificationPayload{
		ID:        uuid.New().String(),
		Kind:      kind,
		LeadID:    lead.ID,
		Email:     lead.Email,
		Name:      lead.Name,
		Phone:     lead.Phone,
		Interest:  lead.Interest,
		Origin:    lead.Origin,
		Timestamp: lead.Timestamp,
		UTM:       lead.UTM,
		Referer:   lead.Referer,
	}
}
