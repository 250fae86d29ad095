package service_test

import (
	"context"
	"errors"
	"sort"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/model"
	"smartwarehouse/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubItemRepo struct {
	items  map[uint]*model.Item
	nextID uint
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uint]*model.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uint) (*model.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return item, nil
}

func (r *stubItemRepo) FindByName(_ context.Context, name string) (*model.Item, error) {
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubItemRepo) List(_ context.Context, skip, limit int) ([]model.Item, error) {
	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	var result []model.Item
	for i, id := range ids {
		if i < skip {
			continue
		}
		if limit > 0 && len(result) >= limit {
			break
		}
		result = append(result, *r.items[uint(id)])
	}
	return result, nil
}

func (r *stubItemRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Item, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubItemRepo) DecrementStockTx(_ *gorm.DB, id uint, qty int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if item.CurrentStock < qty {
		return repository.ErrStockConflict
	}
	item.CurrentStock -= qty
	return nil
}

func (r *stubItemRepo) IncrementStockTx(_ *gorm.DB, id uint, qty int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.CurrentStock += qty
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

type stubOrderRepo struct {
	orders []model.Order
	nextID uint
}

func newStubOrderRepo() *stubOrderRepo { return &stubOrderRepo{} }

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.Order) error {
	if o.ID == 0 {
		r.nextID++
		o.ID = r.nextID
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *stubOrderRepo) ListByItem(_ context.Context, itemID uint) ([]model.Order, error) {
	var result []model.Order
	for _, o := range r.orders {
		if o.ItemID == itemID {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *stubOrderRepo) CountByItem(_ context.Context, itemID uint) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Notifier spy ─────────────────────────────────────────────────────────────

type criticalCall struct {
	name  string
	stock int
}

type stubNotifier struct {
	criticals []criticalCall
	reports   []string
	forecasts [][]dto.ForecastResponse
}

func (n *stubNotifier) NotifyCriticalItem(_ context.Context, name string, stockLevel int) {
	n.criticals = append(n.criticals, criticalCall{name: name, stock: stockLevel})
}

func (n *stubNotifier) NotifyReport(_ context.Context, fullText string, forecasts []dto.ForecastResponse) {
	n.reports = append(n.reports, fullText)
	n.forecasts = append(n.forecasts, forecasts)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func seedItem(repo *stubItemRepo, name string, stock int) *model.Item {
	item := &model.Item{Name: name, CurrentStock: stock}
	_ = repo.Create(context.Background(), item)
	return item
}
