package service // authentication business logic

import (
	"context" // request-scoped deadlines for store calls
	"errors"  // sentinel matching
	"fmt"     // error wrapping

	"github.com/rs/zerolog" // structured logging

	"github.com/iliyamo/contacts-api/internal/model"      // user row
	"github.com/iliyamo/contacts-api/internal/queue"      // lifecycle events
	"github.com/iliyamo/contacts-api/internal/repository" // store sentinels
	"github.com/iliyamo/contacts-api/internal/utils"      // bcrypt and token helpers
	"github.com/iliyamo/contacts-api/internal/validation" // request schemas
)

// UserService registers users, verifies credentials and manages the single
// live session token of each user.
type UserService struct {
	users  UserStore
	events EventPublisher
	cost   int
	log    zerolog.Logger

	// compared against when the username is unknown so that both login
	// failures cost one bcrypt verification
	dummyHash string
}

func NewUserService(users UserStore, events EventPublisher, bcryptCost int, log zerolog.Logger) (*UserService, error) {
	if events == nil {
		events = queue.Nop{}
	}
	dummy, err := utils.HashPassword("not-a-real-password", bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}
	return &UserService{users: users, events: events, cost: bcryptCost, log: log, dummyHash: dummy}, nil
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return UserResponse{}, err
	}
	hash, err := utils.HashPassword(req.Password, s.cost)
	if err != nil {
		return UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{Username: req.Username, Name: req.Name, Password: hash}
	// uniqueness comes from the primary key, not a prior lookup
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return UserResponse{}, ErrDuplicateUsername
		}
		return UserResponse{}, err
	}

	publish(ctx, s.events, s.log, queue.NewEvent(queue.UserRegistered, u.Username, 0))
	return toUserResponse(u), nil
}

// Login verifies credentials and issues a new token, replacing any
// previous one.  Unknown users and wrong passwords fail identically.
func (s *UserService) Login(ctx context.Context, req LoginUserRequest) (UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return UserResponse{}, err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.VerifyPassword(s.dummyHash, req.Password)
			return UserResponse{}, ErrInvalidCredentials
		}
		return UserResponse{}, err
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return UserResponse{}, ErrInvalidCredentials
	}

	raw, err := utils.NewToken()
	if err != nil {
		return UserResponse{}, fmt.Errorf("generate token: %w", err)
	}
	digest := utils.HashToken(raw)
	// overwrites any earlier token: the latest login wins
	if err := s.users.SetToken(ctx, u.Username, &digest); err != nil {
		return UserResponse{}, err
	}

	resp := toUserResponse(u)
	resp.Token = raw
	return resp, nil
}

// Resolve returns the user currently holding token.
func (s *UserService) Resolve(ctx context.Context, token string) (UserResponse, error) {
	if err := validation.Token(token); err != nil {
		return UserResponse{}, ErrUnauthenticated
	}
	u, err := s.users.GetByToken(ctx, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserResponse{}, ErrUnauthenticated
		}
		return UserResponse{}, err
	}
	return toUserResponse(u), nil
}

// Logout clears the user's token.
func (s *UserService) Logout(ctx context.Context, username string) (bool, error) {
	if err := s.users.SetToken(ctx, username, nil); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	return true, nil
}

// UpdateProfile applies the supplied name and/or password.
func (s *UserService) UpdateProfile(ctx context.Context, username string, req UpdateUserRequest) (UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return UserResponse{}, err
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, s.cost)
		if err != nil {
			return UserResponse{}, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = &hash
	}

	u, err := s.users.UpdateProfile(ctx, username, req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserResponse{}, ErrUnauthenticated
		}
		return UserResponse{}, err
	}
	return toUserResponse(u), nil
}

// publish hands ev to the broker.  The write it describes has already
// committed, so a delivery failure is logged instead of failing the request.
func publish(ctx context.Context, p EventPublisher, log zerolog.Logger, ev queue.Event) {
	if err := p.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).Str("event", ev.Type).Str("username", ev.Username).Msg("event not published")
	}
}
