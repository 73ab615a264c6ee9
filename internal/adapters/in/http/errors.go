package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/generated/servers"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const msgInternalError = "Something went wrong!"

// NewErrorHandler returns the echo error handler rendering every failure as
// {"status": <code>, "message": <text>}.
//
// Domain errors are mapped through errs.KindOf: not found becomes 404 and
// validation failures 400. Errors raised by echo itself keep their code.
// Anything else is a 500 whose cause is logged but not returned.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := describe(err, ctx.Request())
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"uri", ctx.Request().RequestURI,
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Status: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func describe(err error, req *http.Request) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return httpErr.Code, "Path not found: " + req.RequestURI
		case http.StatusMethodNotAllowed:
			return httpErr.Code, fmt.Sprintf("%s not allowed for %s", req.Method, req.RequestURI)
		default:
			return httpErr.Code, fmt.Sprint(httpErr.Message)
		}
	}

	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound, errs.MessageOf(err)
	case errs.KindBadRequest:
		return http.StatusBadRequest, errs.MessageOf(err)
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}
