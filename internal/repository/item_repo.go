package repository

import (
	"context"
	"errors"

	"smartwarehouse/internal/model"

	"gorm.io/gorm"
)

// ErrStockConflict is returned by DecrementStockTx when the guarded update
// matched no row because current_stock < quantity. The item row itself may
// still exist - callers distinguish via FindByIDTx.
var ErrStockConflict = errors.New("stock guard rejected decrement")

// ItemRepository defines the data access contract for items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	FindByName(ctx context.Context, name string) (*model.Item, error)
	// List returns items in insertion order. limit <= 0 means no limit.
	List(ctx context.Context, skip, limit int) ([]model.Item, error)

	// Used inside transactions - callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uint) (*model.Item, error)
	// DecrementStockTx applies a guarded decrement:
	//   UPDATE items SET current_stock = current_stock - qty
	//   WHERE id = ? AND current_stock >= qty
	// and returns ErrStockConflict when no row matched. The guard makes the
	// read-modify-write race-free under concurrent mutations of the same item.
	DecrementStockTx(tx *gorm.DB, id uint, qty int) error
	IncrementStockTx(tx *gorm.DB, id uint, qty int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByName(ctx context.Context, name string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	var items []model.Item
	q := r.db.WithContext(ctx).Order("id ASC").Offset(skip)
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Item, error) {
	var item model.Item
	err := tx.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) DecrementStockTx(tx *gorm.DB, id uint, qty int) error {
	res := tx.Model(&model.Item{}).
		Where("id = ? AND current_stock >= ?", id, qty).
		Update("current_stock", gorm.Expr("current_stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockConflict
	}
	return nil
}

func (r *itemRepo) IncrementStockTx(tx *gorm.DB, id uint, qty int) error {
	res := tx.Model(&model.Item{}).Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
