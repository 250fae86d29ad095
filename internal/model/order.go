package model

import (
	"time"
)

// Order records one outgoing stock movement (a sale / shipment).
// Rows are append-only: never updated, never deleted. Restocks do NOT create
// orders - burn-rate analysis sees sales history only.
type Order struct {
	ID       uint      `gorm:"primaryKey"`
	ItemID   uint      `gorm:"not null;index"`
	Quantity int       `gorm:"not null"`
	Date     time.Time `gorm:"not null;index"`

	Item *Item `gorm:"foreignKey:ItemID"`
}

func (Order) TableName() string { return "orders" }
