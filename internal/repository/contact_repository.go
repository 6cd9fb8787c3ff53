package repository // owner-scoped contact persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/contacts-api/internal/model"
)

const contactColumns = "id, first_name, last_name, email, phone, username, created_at, updated_at"

// ContactRepo persists contacts.  Every read and write is filtered by the
// owning username in the same statement as the id, so ownership is never a
// separate check.
type ContactRepo struct{ DB *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{DB: db} }

// Create inserts c and returns it with the assigned id.
func (r *ContactRepo) Create(ctx context.Context, c model.Contact) (model.Contact, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contacts (first_name, last_name, email, phone, username) VALUES (?, ?, ?, ?, ?)",
		c.FirstName, c.LastName, c.Email, c.Phone, c.Username)
	if err != nil {
		return model.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Contact{}, fmt.Errorf("last insert id: %w", err)
	}
	c.ID = uint64(id)
	return c, nil
}

// GetOwned returns the contact with id when it belongs to username.
func (r *ContactRepo) GetOwned(ctx context.Context, username string, id uint64) (model.Contact, error) {
	var c model.Contact
	err := r.DB.GetContext(ctx, &c,
		"SELECT "+contactColumns+" FROM contacts WHERE id = ? AND username = ? LIMIT 1",
		id, username)
	return c, notFound(err, "select contact")
}

// UpdateOwned overwrites the non-nil patch fields of an owned contact and
// returns the stored row.
func (r *ContactRepo) UpdateOwned(ctx context.Context, username string, id uint64, p model.ContactPatch) (model.Contact, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE contacts SET
			first_name = COALESCE(?, first_name),
			last_name  = COALESCE(?, last_name),
			email      = COALESCE(?, email),
			phone      = COALESCE(?, phone)
		WHERE id = ? AND username = ?`,
		p.FirstName, p.LastName, p.Email, p.Phone, id, username)
	if err != nil {
		return model.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	if err := affected(res); err != nil {
		return model.Contact{}, err
	}
	return r.GetOwned(ctx, username, id)
}

// DeleteOwned removes an owned contact.
func (r *ContactRepo) DeleteOwned(ctx context.Context, username string, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM contacts WHERE id = ? AND username = ?", id, username)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return affected(res)
}
