package model // user row

import "time"

// User represents an account row in the `users` table.  The username is
// the immutable primary key and the owner reference used by contacts.
//
// Fields:
//
//	Username  – unique login name.
//	Name      – display name.
//	Password  – bcrypt hash; never serialized.
//	Token     – SHA-256 hex digest of the live session token, nil when logged out.
type User struct {
	Username  string    `db:"username"`
	Name      string    `db:"name"`
	Password  string    `db:"password"`
	Token     *string   `db:"token"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
