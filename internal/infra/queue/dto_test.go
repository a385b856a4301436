package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fisiomuv/preventa-api/internal/entity"
)

func TestNotificationPayloadOmitsEmptyOptionals(t *testing.T) {
	payload := NotificationPayload{
		ID:        "n-1",
		Kind:      KindClient,
		LeadID:    "lead-1",
		Email:     "a@b.com",
		Interest:  "Sauna",
		Origin:    entity.OriginLanding,
		Timestamp: 1700000000000,
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotContains(t, string(body), `"utm"`)
	assert.NotContains(t, string(body), `"name"`)
	assert.NotContains(t, string(body), `"referer"`)

	var received NotificationPayload
	assert.NoError(t, json.Unmarshal(body, &received))
	assert.Equal(t, payload, received)
}

func TestNotificationPayloadCarriesUTM(t *testing.T) {
	payload := NotificationPayload{
		ID:       "n-2",
		Kind:     KindOperator,
		LeadID:   "lead-2",
		Email:    "a@b.com",
		Interest: "Pack Express",
		UTM:      &entity.UTM{Source: "instagram", Campaign: "verano"},
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var received NotificationPayload
	assert.NoError(t, json.Unmarshal(body, &received))
	assert.Equal(t, "instagram", received.UTM.Source)
	assert.Equal(t, "verano", received.UTM.Campaign)
	assert.Empty(t, received.UTM.Medium)
}
