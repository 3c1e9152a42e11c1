package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rgDashboard/domain"
)

type ClusterService interface {
	Clusters(product domain.ProductSegment) domain.ProductClusterData
	Segmentation(product domain.ProductSegment) []domain.SegmentationCluster
}

type ClusterHandler struct {
	validate       *validator.Validate
	clusterService ClusterService
}

func NewClusterHandler(svc ClusterService) *ClusterHandler {
	return &ClusterHandler{
		validate:       validator.New(),
		clusterService: svc,
	}
}

type ClusterQuery struct {
	Product string `query:"product"`
}

func (h *ClusterHandler) Clusters(c echo.Context) error {
	var q ClusterQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	data := h.clusterService.Clusters(domain.ParseProductSegment(q.Product))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(data))
}

func (h *ClusterHandler) Segmentation(c echo.Context) error {
	var q ClusterQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	data := h.clusterService.Segmentation(domain.ParseProductSegment(q.Product))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(data))
}
