package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	Name         string `json:"name"          validate:"required,min=1,max=120"`
	CurrentStock int    `json:"current_stock" validate:"min=0"`
}

// InventoryFilter paginates the inventory listing.
type InventoryFilter struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
}

// StockCheckResponse is returned by the public stock check endpoint.
type StockCheckResponse struct {
	ItemID       uint   `json:"item_id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
}
