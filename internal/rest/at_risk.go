package rest

import (
	"bytes"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rgDashboard/business/atrisk"
	"rgDashboard/business/export"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
)

type (
	AtRiskHandler struct {
		validate      *validator.Validate
		atRiskService AtRiskService
	}

	AtRiskService interface {
		Users(product domain.ProductSegment, timeRange domain.TimeRange) []domain.AtRiskUser
		Detail(userID string) domain.UserDetail
	}

	AtRiskQuery struct {
		Product   string `query:"product"`
		TimeRange string `query:"time_range"`
		Cluster   string `query:"cluster"`
		Search    string `query:"search"`
		Sort      string `query:"sort"`
		Dir       string `query:"dir" validate:"omitempty,oneof=asc desc"`
	}
)

func NewAtRiskHandler(svc AtRiskService) *AtRiskHandler {
	return &AtRiskHandler{
		validate:      validator.New(),
		atRiskService: svc,
	}
}

func (h *AtRiskHandler) List(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	users := h.table(q)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(users))
}

func (h *AtRiskHandler) Export(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	users := h.table(q)
	filename := export.AtRiskUsersFilename(domain.ParseTimeRange(q.TimeRange), domain.ParseProductSegment(q.Product))

	return sendCSV(c, filename, func(buf *bytes.Buffer) error {
		if err := export.AtRiskUsersCSV(buf, users); err != nil {
			logger.Error("Failed to export at-risk users", "error", err)
			return err
		}
		return nil
	})
}

func (h *AtRiskHandler) Detail(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing user id"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.atRiskService.Detail(id)))
}

func (h *AtRiskHandler) bindQuery(c echo.Context) (AtRiskQuery, error) {
	var q AtRiskQuery
	if err := c.Bind(&q); err != nil {
		return q, err
	}
	if err := h.validate.Struct(&q); err != nil {
		return q, err
	}
	return q, nil
}

func (h *AtRiskHandler) table(q AtRiskQuery) []domain.AtRiskUser {
	users := h.atRiskService.Users(domain.ParseProductSegment(q.Product), domain.ParseTimeRange(q.TimeRange))
	users = atrisk.Filter(users, atrisk.UserFilter{Cluster: q.Cluster, Search: q.Search})
	return atrisk.Sort(users, q.Sort, q.Dir)
}
