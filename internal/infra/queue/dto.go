package queue

import "github.com/fisiomuv/preventa-api/internal/entity"

const (
	KindOperator = "OPERATOR"
	KindClient   = "CLIENT"
)

// NotificationPayload carries everything a notification email needs, so the
// worker never goes back to the database.
type NotificationPayload struct {
	ID   string `json:"id"` // notification id, for log correlation
	Kind string `json:"kind"`

	LeadID    string      `json:"lead_id"`
	Email     string      `json:"email"`
	Name      string      `json:"name,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Interest  string      `json:"interest"`
	Origin    string      `json:"origin"`
	Timestamp int64       `json:"timestamp"`
	UTM       *entity.UTM `json:"utm,omitempty"`
	Referer   string      `json:"referer,omitempty"`
}
