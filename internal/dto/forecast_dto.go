package dto

import "github.com/shopspring/decimal"

// ForecastResponse is one entry of the full-inventory forecast report,
// in the store's listing order.
type ForecastResponse struct {
	ItemID                uint            `json:"item_id"`
	ItemName              string          `json:"item_name"`
	CurrentStock          int             `json:"current_stock"`
	AvgDailySales         decimal.Decimal `json:"avg_daily_sales"`
	DaysUntilOutOfStock   int             `json:"days_until_out_of_stock"`
	PredictedStockoutDate string          `json:"predicted_stockout_date"` // YYYY-MM-DD
	Recommendation        string          `json:"recommendation"`          // "CRITICAL ORDER!" | "Healthy"
}
