package repository

import (
	"context"

	"smartwarehouse/internal/model"

	"gorm.io/gorm"
)

// OrderRepository is the append-only ledger of outgoing movements.
type OrderRepository interface {
	// CreateTx appends an order inside the caller's transaction so the stock
	// decrement and the ledger entry commit together or not at all.
	CreateTx(tx *gorm.DB, o *model.Order) error
	// ListByItem returns an item's full order history, ordered by timestamp
	// ascending - the shape the burn-rate estimator expects.
	ListByItem(ctx context.Context, itemID uint) ([]model.Order, error)
	CountByItem(ctx context.Context, itemID uint) (int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) CreateTx(tx *gorm.DB, o *model.Order) error {
	return tx.Create(o).Error
}

func (r *orderRepo) ListByItem(ctx context.Context, itemID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("date ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) CountByItem(ctx context.Context, itemID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("item_id = ?", itemID).Count(&n).Error
	return n, err
}
