package service

import (
	"context"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/model"
	"smartwarehouse/internal/repository"
)

// ItemService defines the business logic contract for item management.
// Items are created through here and never deleted; their stock is mutated
// only by InventoryService.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]dto.ItemResponse, error)
	GetByName(ctx context.Context, name string) (*dto.ItemResponse, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, ErrDuplicateItem
	}

	item := &model.Item{
		Name:         req.Name,
		CurrentStock: req.CurrentStock,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

func (s *itemService) List(ctx context.Context, filter dto.InventoryFilter) ([]dto.ItemResponse, error) {
	items, err := s.repo.List(ctx, filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *itemToResponse(&items[i]))
	}
	return resp, nil
}

func (s *itemService) GetByName(ctx context.Context, name string) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return itemToResponse(item), nil
}

func itemToResponse(item *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		CurrentStock: item.CurrentStock,
	}
}
