package usecase

import "github.com/fisiomuv/preventa-api/internal/entity"

type CreateLeadInput struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Interest string `json:"interest"`

	// Consent is a pointer so a missing field and an explicit false produce
	// distinct validation codes. Only a literal true is accepted.
	Consent *bool `json:"consent"`

	// Client-supplied creation instant in unix millis; zero means the server
	// assigns one.
	Timestamp int64 `json:"timestamp,omitempty"`

	// Folded in by the handler from the query string and headers.
	UTM     *entity.UTM `json:"-"`
	Referer string      `json:"-"`
	Origin  string      `json:"-"`
}

type CreateLeadOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
