package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"smartwarehouse/internal/apierror"
	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const stockCacheTTL = 30 * time.Second

// StockCheckHandler serves the public stock check endpoint used by floor
// scanners. Read-only, no side effects; short Redis TTL keeps it close to the
// live ledger without hammering the DB.
type StockCheckHandler struct {
	repo repository.ItemRepository
	rdb  *redis.Client
}

func NewStockCheckHandler(repo repository.ItemRepository, rdb *redis.Client) *StockCheckHandler {
	return &StockCheckHandler{repo: repo, rdb: rdb}
}

// GetStockByName godoc
// @Summary Current stock level for one item, by name
// @Tags Inventory
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} dto.StockCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /stock/{name} [get]
func (h *StockCheckHandler) GetStockByName(c *gin.Context) {
	name := c.Param("name")
	ctx := c.Request.Context()
	cacheKey := "stock:" + name

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.StockCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss - query DB
	item, err := h.repo.FindByName(ctx, name)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Item not found"))
		return
	}

	resp := dto.StockCheckResponse{
		ItemID:       item.ID,
		Name:         item.Name,
		CurrentStock: item.CurrentStock,
	}

	// 3. Populate cache - best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, stockCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
