package handler

import (
	"net/http"

	"smartwarehouse/internal/apierror"
	"smartwarehouse/internal/service"

	"github.com/gin-gonic/gin"
)

type ForecastHandler struct{ svc service.ForecastService }

func NewForecastHandler(svc service.ForecastService) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// GetForecast godoc
// @Summary Forecast stockout dates for every item and dispatch the report
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.ForecastResponse
// @Router /analytics/forecast/ [get]
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	forecasts, err := h.svc.ForecastAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute forecast"))
		return
	}
	c.JSON(http.StatusOK, forecasts)
}
