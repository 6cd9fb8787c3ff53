// Package queue defines the lifecycle events emitted to the message broker
// and the publisher that delivers them.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Event types.  The routing key of a published event is its type.
const (
	UserRegistered = "user.registered"
	ContactCreated = "contact.created"
	ContactUpdated = "contact.updated"
	ContactDeleted = "contact.deleted"
)

// Event is published after a successful write.  It carries identifiers
// only; consumers that need contact details read them from the API.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Username   string    `json:"username"`
	ContactID  uint64    `json:"contact_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps a fresh id and the current UTC time.
func NewEvent(typ, username string, contactID uint64) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Username:   username,
		ContactID:  contactID,
		OccurredAt: time.Now().UTC(),
	}
}
