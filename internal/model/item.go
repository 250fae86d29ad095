package model

import "time"

// Item is the authoritative stock record for one warehouse SKU.
// CurrentStock is only ever mutated through InventoryService so the >= 0
// invariant holds at all times.
type Item struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	CurrentStock int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Orders []Order `gorm:"foreignKey:ItemID"`
}

func (Item) TableName() string { return "items" }
