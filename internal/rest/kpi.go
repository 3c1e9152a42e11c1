package rest

import (
	"net/http"
	"strconv"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rgDashboard/domain"
)

type (
	KPIHandler struct {
		validate   *validator.Validate
		kpiService KPIService
	}

	KPIService interface {
		Snapshot(product domain.ProductSegment) domain.KPISnapshot
		Trend(metric domain.KPIMetric, product domain.ProductSegment, perUser bool) domain.TrendSeries
	}

	KPIQuery struct {
		Product string `query:"product"`
	}

	KPITrendQuery struct {
		Metric  string `query:"metric"`
		Product string `query:"product"`
		PerUser string `query:"per_user" validate:"omitempty,boolean"`
	}
)

func NewKPIHandler(svc KPIService) *KPIHandler {
	return &KPIHandler{
		validate:   validator.New(),
		kpiService: svc,
	}
}

func (h *KPIHandler) Snapshot(c echo.Context) error {
	var q KPIQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	snap := h.kpiService.Snapshot(domain.ParseProductSegment(q.Product))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snap))
}

func (h *KPIHandler) Trend(c echo.Context) error {
	var q KPITrendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// unknown metrics fall back to the turnover
	metric, _ := domain.ParseKPIMetric(q.Metric)
	perUser, _ := strconv.ParseBool(q.PerUser)

	series := h.kpiService.Trend(metric, domain.ParseProductSegment(q.Product), perUser)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(series))
}
