package handler

import (
	"errors"
	"net/http"

	"smartwarehouse/internal/apierror"
	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.InventoryService }

func NewOrdersHandler(svc service.InventoryService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// CreateOrder godoc
// @Summary Record a single outgoing order, decrease stock, alert if stock runs low
// @Tags Sales
// @Accept json
// @Produce json
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /orders/ [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordOutgoing(c.Request.Context(), req)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Restock godoc
// @Summary Record a single incoming movement and increase stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} apierror.APIError
// @Router /restock/ [post]
func (h *OrdersHandler) Restock(c *gin.Context) {
	var req dto.RestockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordIncoming(c.Request.Context(), req)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.Error(err) //nolint:errcheck
	}
}
