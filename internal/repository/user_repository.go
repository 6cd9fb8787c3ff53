package repository // user persistence and session tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/contacts-api/internal/model"
)

const userColumns = "username, name, password, token, created_at, updated_at"

// UserRepo persists accounts and their session token digest.
type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user.  The password must already be hashed.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, name, password) VALUES (?, ?, ?)",
		u.Username, u.Name, u.Password)
	if err != nil {
		if isDuplicate(err) {
			return ErrUsernameExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername fetches a user by primary key.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u,
		"SELECT "+userColumns+" FROM users WHERE username = ? LIMIT 1", username)
	return u, notFound(err, "select user")
}

// GetByToken fetches the user currently holding the token digest.
func (r *UserRepo) GetByToken(ctx context.Context, tokenHash string) (model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u,
		"SELECT "+userColumns+" FROM users WHERE token = ? LIMIT 1", tokenHash)
	return u, notFound(err, "select user by token")
}

// SetToken overwrites the stored token digest; nil clears it.
func (r *UserRepo) SetToken(ctx context.Context, username string, tokenHash *string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET token = ? WHERE username = ?", tokenHash, username)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	return affected(res)
}

// UpdateProfile writes the non-nil fields and returns the stored row.
func (r *UserRepo) UpdateProfile(ctx context.Context, username string, name, passwordHash *string) (model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name = COALESCE(?, name), password = COALESCE(?, password) WHERE username = ?",
		name, passwordHash, username)
	if err != nil {
		return model.User{}, fmt.Errorf("update user: %w", err)
	}
	if err := affected(res); err != nil {
		return model.User{}, err
	}
	return r.GetByUsername(ctx, username)
}

// notFound maps sql.ErrNoRows to ErrNotFound and wraps anything else.
func notFound(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// affected turns a zero-row write into ErrNotFound.  The DSN sets
// clientFoundRows, so matched-but-unchanged rows still count.
func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
