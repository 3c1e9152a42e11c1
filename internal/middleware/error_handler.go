package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"rgDashboard/pkg/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler renders every unhandled error as {"message": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	log := logger.With("method", c.Request().Method, "path", c.Request().URL.Path, "status", code)
	if code >= http.StatusInternalServerError {
		log.Error("Request failed", "route", c.Path(), "error", err)
	} else {
		log.Warn("Request rejected", "error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, errorResponse{Message: message})
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", "error", writeErr)
	}
}
