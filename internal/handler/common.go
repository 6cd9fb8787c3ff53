package handler // handler defines http handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contacts-api/internal/middleware"
	"github.com/iliyamo/contacts-api/internal/service"
	"github.com/iliyamo/contacts-api/internal/validation"
)

const defaultTimeout = 5 * time.Second

// withTimeout bounds the store round-trips of one request.
func withTimeout(c echo.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultTimeout
	}
	return context.WithTimeout(c.Request().Context(), d)
}

// bindJSON decodes the request body into dst whatever the Content-Type.
// An empty body leaves dst untouched so validation can name the missing
// fields.
func bindJSON(c echo.Context, dst any) error {
	if c.Request().ContentLength == 0 {
		return nil
	}
	err := c.Echo().JSONSerializer.Deserialize(c, dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
}

// contactID reads the :id path parameter.
func contactID(c echo.Context) (uint64, error) {
	var id uint64
	if err := echo.PathParamsBinder(c).Uint64("id", &id).BindError(); err != nil {
		return 0, validation.Errors{{Field: "id", Message: "id must be a positive integer"}}
	}
	return id, nil
}

// currentUser returns the user attached by the auth guard.  Routes using it
// are always guarded, so a miss is an unauthenticated request.
func currentUser(c echo.Context) (service.UserResponse, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return service.UserResponse{}, service.ErrUnauthenticated
	}
	return u, nil
}
