package dto

// CreateOrderRequest records a single outgoing movement (sale) against an item.
type CreateOrderRequest struct {
	ItemID   uint `json:"item_id"  validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

// RestockRequest records a single incoming movement. Restocks increment stock
// but never create an order record and never trigger alerts.
type RestockRequest struct {
	ItemID   uint `json:"item_id"  validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}
