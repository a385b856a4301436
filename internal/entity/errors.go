package entity

import "errors"

// ErrLeadAlreadyExists is returned by the repository when the unique index on
// (email, interest) rejects an insert. It closes the window between the
// duplicate pre-check and the write.
var ErrLeadAlreadyExists = errors.New("a lead for this email and interest already exists")

// ErrLeadNotFound is returned when a lookup by id matches no stored lead.
var ErrLeadNotFound = errors.New("lead not found")
