// Package service implements authentication and the owner-scoped contact
// operations on top of the persistence gateway.
package service

import (
	"context"

	"github.com/iliyamo/contacts-api/internal/model"
	"github.com/iliyamo/contacts-api/internal/queue"
)

// UserStore is the persistence the authentication service needs.
// *repository.UserRepo implements it.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByToken(ctx context.Context, tokenHash string) (model.User, error)
	SetToken(ctx context.Context, username string, tokenHash *string) error
	UpdateProfile(ctx context.Context, username string, name, passwordHash *string) (model.User, error)
}

// ContactStore is the persistence the contact service needs.
// *repository.ContactRepo implements it.
type ContactStore interface {
	Create(ctx context.Context, c model.Contact) (model.Contact, error)
	GetOwned(ctx context.Context, username string, id uint64) (model.Contact, error)
	UpdateOwned(ctx context.Context, username string, id uint64, p model.ContactPatch) (model.Contact, error)
	DeleteOwned(ctx context.Context, username string, id uint64) error
	Search(ctx context.Context, username string, f model.ContactFilter) ([]model.Contact, int64, error)
}

// EventPublisher receives lifecycle events after successful writes.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.Event) error
}
