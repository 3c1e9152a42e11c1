package rest

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

const csvContentType = "text/csv; charset=utf-8"

// sendCSV buffers the export so a write failure can still become a 500.
func sendCSV(c echo.Context, filename string, write func(buf *bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, csvContentType, buf.Bytes())
}
