package service_test

import (
	"context"
	"testing"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCreate_AssignsIDAndStock(t *testing.T) {
	svc := service.NewItemService(newStubItemRepo())

	resp, err := svc.Create(context.Background(), dto.CreateItemRequest{Name: "Bolts", CurrentStock: 30})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Bolts", resp.Name)
	assert.Equal(t, 30, resp.CurrentStock)
}

func TestItemCreate_RejectsDuplicateName(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewItemService(repo)

	seedItem(repo, "Bolts", 30)

	_, err := svc.Create(context.Background(), dto.CreateItemRequest{Name: "Bolts", CurrentStock: 1})

	assert.ErrorIs(t, err, service.ErrDuplicateItem)
	items, _ := repo.List(context.Background(), 0, 0)
	assert.Len(t, items, 1)
}

func TestItemList_Pagination(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewItemService(repo)

	seedItem(repo, "Bolts", 1)
	seedItem(repo, "Nuts", 2)
	seedItem(repo, "Washers", 3)

	resp, err := svc.List(context.Background(), dto.InventoryFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, "Nuts", resp[0].Name)
}

func TestItemGetByName(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewItemService(repo)

	seedItem(repo, "Bolts", 12)

	resp, err := svc.GetByName(context.Background(), "Bolts")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.CurrentStock)

	_, err = svc.GetByName(context.Background(), "Ghost")
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}
