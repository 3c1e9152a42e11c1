package rest

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rgDashboard/business/auditlog"
	"rgDashboard/business/export"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
)

type (
	AuditLogHandler struct {
		validate        *validator.Validate
		auditLogService AuditLogService
	}

	AuditLogService interface {
		Entries(f domain.LogFilter) []domain.LogEntry
		Detail(username string) domain.LogDetail
		Range(days int, includeToday bool) (string, string)
	}

	LogQuery struct {
		StartDate    string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
		EndDate      string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
		Preset       int    `query:"preset" validate:"omitempty,oneof=7 14 28 90"`
		IncludeToday string `query:"include_today" validate:"omitempty,boolean"`
		Username     string `query:"username"`
		Product      string `query:"product"`
		Sort         string `query:"sort"`
		Dir          string `query:"dir" validate:"omitempty,oneof=asc desc"`
	}
)

func NewAuditLogHandler(svc AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		validate:        validator.New(),
		auditLogService: svc,
	}
}

func (h *AuditLogHandler) List(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	entries, _ := h.entries(q)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(entries))
}

func (h *AuditLogHandler) Export(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	entries, f := h.entries(q)

	return sendCSV(c, export.LogEntriesFilename(f.StartDate, f.EndDate), func(buf *bytes.Buffer) error {
		if err := export.LogEntriesCSV(buf, entries); err != nil {
			logger.Error("Failed to export audit log", "error", err)
			return err
		}
		return nil
	})
}

func (h *AuditLogHandler) Detail(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing username"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.auditLogService.Detail(username)))
}

func (h *AuditLogHandler) bindQuery(c echo.Context) (LogQuery, error) {
	var q LogQuery
	if err := c.Bind(&q); err != nil {
		return q, err
	}
	if err := h.validate.Struct(&q); err != nil {
		return q, err
	}
	return q, nil
}

func (h *AuditLogHandler) entries(q LogQuery) ([]domain.LogEntry, domain.LogFilter) {
	f := domain.LogFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Username:  q.Username,
		Product:   q.Product,
	}

	// missing dates come from the preset, or the 28-day default without one
	if f.StartDate == "" || f.EndDate == "" {
		includeToday := true
		if q.IncludeToday != "" {
			includeToday, _ = strconv.ParseBool(q.IncludeToday)
		}
		start, end := h.auditLogService.Range(q.Preset, includeToday)
		if f.StartDate == "" {
			f.StartDate = start
		}
		if f.EndDate == "" {
			f.EndDate = end
		}
	}

	entries := h.auditLogService.Entries(f)
	return auditlog.Sort(entries, q.Sort, q.Dir), f
}
