package handler // user and session endpoints

import (
	"time" // per-request store deadline

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/contacts-api/internal/service" // registration, login and profile logic
)

// UserHandler serves /api/users.
type UserHandler struct {
	Users   *service.UserService
	Timeout time.Duration
}

func NewUserHandler(users *service.UserService, timeout time.Duration) *UserHandler {
	return &UserHandler{Users: users, Timeout: timeout}
}

// Register: POST /api/users
func (h *UserHandler) Register(c echo.Context) error {
	var req service.RegisterUserRequest
	if err := bindJSON(c, &req); err != nil { // malformed JSON -> 400
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	resp, err := h.Users.Register(ctx, req)
	if err != nil {
		return err // validation / duplicate username, rendered by ErrorHandler
	}
	return success(c, resp, "User registered successfully")
}

// Login: POST /api/users/login
func (h *UserHandler) Login(c echo.Context) error {
	var req service.LoginUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	resp, err := h.Users.Login(ctx, req)
	if err != nil {
		return err
	}
	// the raw token is only ever shown here
	return success(c, resp, "User logged in successfully")
}

// Current: GET /api/users/current
// Answers from the user the auth guard already resolved.
func (h *UserHandler) Current(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	return success(c, u, "")
}

// Update: PATCH /api/users/current
func (h *UserHandler) Update(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	var req service.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	resp, err := h.Users.UpdateProfile(ctx, u.Username, req)
	if err != nil {
		return err
	}
	return success(c, resp, "User updated successfully")
}

// Logout: DELETE /api/users/current
func (h *UserHandler) Logout(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	ok, err := h.Users.Logout(ctx, u.Username)
	if err != nil {
		return err
	}
	return success(c, ok, "User logged out successfully")
}
