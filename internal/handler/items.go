package handler

import (
	"errors"
	"net/http"

	"smartwarehouse/internal/apierror"
	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// Create godoc
// @Summary Create a new item (duplicate names rejected)
// @Tags Inventory
// @Accept json
// @Produce json
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} apierror.APIError
// @Router /items/ [post]
func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateItem) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListInventory godoc
// @Summary Retrieve all items currently in the inventory
// @Tags Inventory
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Router /inventory/ [get]
func (h *ItemsHandler) ListInventory(c *gin.Context) {
	var filter dto.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list inventory"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
