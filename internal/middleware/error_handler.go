package middleware

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/event-catalog/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as a dto.ErrorResponse. Handlers attach a
// ready payload as the echo.HTTPError message; plain string messages and
// framework errors (unknown route, method not allowed) get a code derived
// from the status.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := dto.ErrorResponse{Code: dto.CodeInternalError, Message: http.StatusText(code)}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case dto.ErrorResponse:
			body = m
		case string:
			body = dto.ErrorResponse{Code: codeForStatus(code), Message: m}
		default:
			body = dto.ErrorResponse{Code: codeForStatus(code), Message: http.StatusText(code)}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return dto.CodeNotFound
	case http.StatusBadRequest:
		return dto.CodeBadRequest
	case http.StatusInternalServerError:
		return dto.CodeInternalError
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	}
	return "error"
}
