package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rgDashboard/domain"
)

type (
	SummaryHandler struct {
		validate       *validator.Validate
		summaryService SummaryService
	}

	SummaryService interface {
		Distribution(timeRange domain.TimeRange) []domain.CategoryData
		AtRiskTrend() []domain.ValuePoint
		BusinessKPIs(timeRange domain.TimeRange, category string) domain.BusinessKPI
		BusinessTrend(metric string, timeRange domain.TimeRange, category string) []domain.ValuePoint
	}

	SummaryQuery struct {
		TimeRange string `query:"time_range"`
		Category  string `query:"category"`
		Metric    string `query:"metric"`
	}
)

func NewSummaryHandler(svc SummaryService) *SummaryHandler {
	return &SummaryHandler{
		validate:       validator.New(),
		summaryService: svc,
	}
}

func (h *SummaryHandler) Distribution(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	data := h.summaryService.Distribution(domain.ParseTimeRange(q.TimeRange))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(data))
}

func (h *SummaryHandler) AtRiskTrend(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.summaryService.AtRiskTrend()))
}

func (h *SummaryHandler) BusinessKPIs(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	kpis := h.summaryService.BusinessKPIs(domain.ParseTimeRange(q.TimeRange), q.Category)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(kpis))
}

func (h *SummaryHandler) BusinessTrend(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	points := h.summaryService.BusinessTrend(q.Metric, domain.ParseTimeRange(q.TimeRange), q.Category)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(points))
}

func (h *SummaryHandler) bindQuery(c echo.Context) (SummaryQuery, error) {
	var q SummaryQuery
	if err := c.Bind(&q); err != nil {
		return q, err
	}
	if err := h.validate.Struct(&q); err != nil {
		return q, err
	}
	return q, nil
}
