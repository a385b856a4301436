package entity

import (
	"context"
	"time"
)

// OriginLanding tags submissions coming from the marketing landing page.
const OriginLanding = "landing"

// Interests is the closed set of services a lead can reserve.
var Interests = []string{
	"Masaje Manual",
	"Pistola de Percusión",
	"Sauna",
	"Pack Recovery",
	"Pack Express",
}

func IsValidInterest(s string) bool {
	for _, i := range Interests {
		if s == i {
			return true
		}
	}
	return false
}

// Value Object: UTM
type UTM struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

func (u *UTM) IsEmpty() bool {
	return u == nil || (u.Source == "" && u.Medium == "" && u.Campaign == "" && u.Term == "" && u.Content == "")
}

// Entidad: Lead
//
// ID is assigned by the store on creation and stays empty until then.
// Optional fields are omitted from JSON and from storage when absent.
type Lead struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Interest  string    `json:"interest"`
	Origin    string    `json:"origin"`
	Timestamp int64     `json:"timestamp"`
	UTM       *UTM      `json:"utm,omitempty"`
	Referer   string    `json:"referer,omitempty"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(email, name, phone, interest, origin string, timestamp int64, utm *UTM, referer string) *Lead {
	now := time.Now()

	if origin == "" {
		origin = OriginLanding
	}
	if timestamp == 0 {
		timestamp = now.UnixMilli()
	}
	if utm.IsEmpty() {
		utm = nil
	}

	return &Lead{
		Email:     email,
		Name:      name,
		Phone:     phone,
		Interest:  interest,
		Origin:    origin,
		Timestamp: timestamp,
		UTM:       utm,
		Referer:   referer,
		Consent:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type LeadRepositoryInterface interface {
	// Create persists the lead and fills in the store-assigned ID.
	Create(ctx context.Context, lead *Lead) error

	// ExistsByEmailAndInterest reports whether a lead with the exact
	// (email, interest) pair is already stored.
	ExistsByEmailAndInterest(ctx context.Context, email, interest string) (bool, error)

	FindByID(ctx context.Context, id string) (*Lead, error)
}
