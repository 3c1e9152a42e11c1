package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rgDashboard/domain"
)

type DemographicService interface {
	Demographics(filter domain.TimeFilter, product domain.ProductSegment) domain.DemographicData
}

type DemographicHandler struct {
	validate           *validator.Validate
	demographicService DemographicService
}

func NewDemographicHandler(svc DemographicService) *DemographicHandler {
	return &DemographicHandler{
		validate:           validator.New(),
		demographicService: svc,
	}
}

type DemographicQuery struct {
	TimeFilter string `query:"time_filter"`
	Product    string `query:"product"`
}

func (h *DemographicHandler) Get(c echo.Context) error {
	var q DemographicQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	data := h.demographicService.Demographics(domain.ParseTimeFilter(q.TimeFilter), domain.ParseProductSegment(q.Product))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(data))
}
