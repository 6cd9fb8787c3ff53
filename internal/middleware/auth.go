package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contacts-api/internal/service"
)

// Context keys set by Authenticate.
const (
	userKey     = "user"
	usernameKey = "username"
)

// Resolver maps a raw session token to its user.  *service.UserService
// implements it.
type Resolver interface {
	Resolve(ctx context.Context, token string) (service.UserResponse, error)
}

// Authenticate guards a route group.  The Authorization header carries the
// bare token, no scheme prefix.  A missing header or a token nobody holds
// ends the request with service.ErrUnauthenticated before the handler
// runs; the central error handler renders that as 401.  On success the
// user is available through CurrentUser.
func Authenticate(r Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			if token == "" {
				return service.ErrUnauthenticated
			}
			user, err := r.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					return service.ErrUnauthenticated
				}
				// store failure: still rejected, reported as internal
				return err
			}
			c.Set(userKey, user)
			c.Set(usernameKey, user.Username)
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by Authenticate.
func CurrentUser(c echo.Context) (service.UserResponse, bool) {
	u, ok := c.Get(userKey).(service.UserResponse)
	return u, ok
}

// Username returns the authenticated username, or "" on public routes.
func Username(c echo.Context) string {
	s, _ := c.Get(usernameKey).(string)
	return s
}
