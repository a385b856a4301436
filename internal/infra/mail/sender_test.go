package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fisiomuv/preventa-api/internal/infra/queue"
)

func TestUnconfiguredSenderSkipsQuietly(t *testing.T) {
	s := NewEmailSender("", 0, "", "", "", "")

	payload := queue.NotificationPayload{
		Kind:     queue.KindOperator,
		LeadID:   "lead-1",
		Email:    "a@b.com",
		Interest: "Sauna",
	}

	// Absence of mail configuration is not an application error.
	assert.NoError(t, s.NotifyOperator(payload))
	assert.NoError(t, s.NotifyClient(payload))
}

func TestPartialConfigurationStaysDisabled(t *testing.T) {
	s := NewEmailSender("smtp.example.com", 587, "mailer", "", "from@x.com", "to@x.com")
	assert.False(t, s.enabled())

	s = NewEmailSender("smtp.example.com", 587, "mailer", "secret", "from@x.com", "to@x.com")
	assert.True(t, s.enabled())
}

func TestFormatInstant(t *testing.T) {
	// 2023-11-14T22:13:20Z in unix millis.
	got := formatInstant(1700000000000)
	assert.NotEmpty(t, got)
	assert.Regexp(t, `^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`, got)
}
