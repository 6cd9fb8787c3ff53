package handler // JSON envelope helpers

import (
	"net/http" // status codes

	"github.com/labstack/echo/v4" // JSON rendering
)

// Envelope statuses.  "fail" marks a client error, "error" a server error.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// Response is the envelope around every JSON body.  Message is a string,
// or a list of field errors for validation failures.
type Response struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
	Data    any    `json:"data"`
	Paging  any    `json:"paging,omitempty"`
}

func success(c echo.Context, data any, message string) error {
	if message == "" {
		message = "Success"
	}
	return c.JSON(http.StatusOK, Response{Status: statusSuccess, Message: message, Data: data})
}

func successPage(c echo.Context, data any, paging any, message string) error {
	return c.JSON(http.StatusOK, Response{Status: statusSuccess, Message: message, Data: data, Paging: paging})
}

func failure(c echo.Context, code int, message any) error {
	status := statusFail
	if code >= http.StatusInternalServerError {
		status = statusError
	}
	return c.JSON(code, Response{Status: status, Message: message})
}
