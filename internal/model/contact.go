package model // model holds the database row types

import "time"

// Contact is a row in the `contacts` table.  Every contact belongs to
// exactly one user through Username; all optional columns are nullable.
type Contact struct {
	ID        uint64    `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ContactPatch carries the columns an update may overwrite.  A nil field
// keeps the stored value.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// ContactFilter narrows a contact search.  Empty strings disable a filter.
type ContactFilter struct {
	Name  string // matches first_name OR last_name
	Email string
	Phone string
	Page  int
	Size  int
}
