package handler // error to envelope translation

import (
	"errors"   // errors.Is / errors.As against the taxonomy
	"net/http" // status codes

	"github.com/labstack/echo/v4" // HTTPErrorHandler signature and *echo.HTTPError
	"github.com/rs/zerolog"       // structured logging of internal failures

	"github.com/iliyamo/contacts-api/internal/service"    // domain sentinels
	"github.com/iliyamo/contacts-api/internal/validation" // per-field errors
)

const internalMessage = "Internal server error"

// ErrorHandler is the single translator from errors to the envelope.  It
// is installed as echo.HTTPErrorHandler, so handlers and middleware simply
// return errors.  Anything unrecognized is logged and reported as a
// generic 500.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return // already rendered further down the chain
		}
		code, message := translate(err)
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = failure(c, code, message)
		}
		if err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}

func translate(err error) (int, any) {
	var verrs validation.Errors
	var he *echo.HTTPError
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, []validation.FieldError(verrs)
	case errors.Is(err, service.ErrDuplicateUsername):
		return http.StatusBadRequest, "Username already taken"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Username or password is incorrect"
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, service.ErrContactNotFound):
		return http.StatusNotFound, "Contact not found"
	case errors.As(err, &he):
		if he.Code >= http.StatusInternalServerError {
			return he.Code, internalMessage
		}
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	default:
		return http.StatusInternalServerError, internalMessage
	}
}
