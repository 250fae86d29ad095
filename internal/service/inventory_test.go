package service_test

import (
	"context"
	"testing"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOutgoing_DecrementsAndAppendsOrder(t *testing.T) {
	itemRepo := newStubItemRepo()
	orderRepo := newStubOrderRepo()
	svc := service.NewInventoryService(itemRepo, orderRepo, &stubNotifier{})

	item := seedItem(itemRepo, "Bolts", 20)

	resp, err := svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: item.ID, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, 15, resp.CurrentStock)
	orders, _ := orderRepo.ListByItem(context.Background(), item.ID)
	require.Len(t, orders, 1)
	assert.Equal(t, 5, orders[0].Quantity)
}

func TestRecordOutgoing_UnknownItem(t *testing.T) {
	svc := service.NewInventoryService(newStubItemRepo(), newStubOrderRepo(), &stubNotifier{})

	_, err := svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: 42, Quantity: 1})

	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestRecordOutgoing_InsufficientStockLeavesLedgerUntouched(t *testing.T) {
	itemRepo := newStubItemRepo()
	orderRepo := newStubOrderRepo()
	notifier := &stubNotifier{}
	svc := service.NewInventoryService(itemRepo, orderRepo, notifier)

	item := seedItem(itemRepo, "Bolts", 5)

	_, err := svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: item.ID, Quantity: 10})

	assert.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Equal(t, 5, item.CurrentStock)
	n, _ := orderRepo.CountByItem(context.Background(), item.ID)
	assert.Zero(t, n)
	assert.Empty(t, notifier.criticals)
}

func TestRecordOutgoing_ExactStockAllowed(t *testing.T) {
	itemRepo := newStubItemRepo()
	svc := service.NewInventoryService(itemRepo, newStubOrderRepo(), &stubNotifier{})

	item := seedItem(itemRepo, "Bolts", 10)

	resp, err := svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: item.ID, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentStock)
}

func TestRecordOutgoing_AlertsBelowThreshold(t *testing.T) {
	itemRepo := newStubItemRepo()
	notifier := &stubNotifier{}
	svc := service.NewInventoryService(itemRepo, newStubOrderRepo(), notifier)

	item := seedItem(itemRepo, "Bolts", 6)

	// 6 → 4 crosses strictly below 5: exactly one alert with the new level.
	_, err := svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: item.ID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, notifier.criticals, 1)
	assert.Equal(t, criticalCall{name: "Bolts", stock: 4}, notifier.criticals[0])
}

func TestRecordOutgoing_NoAlertAtOrAboveThreshold(t *testing.T) {
	itemRepo := newStubItemRepo()
	notifier := &stubNotifier{}
	svc := service.NewInventoryService(itemRepo, newStubOrderRepo(), notifier)

	item := seedItem(itemRepo, "Bolts", 20)

	// 20 → 15 stays comfortably above the threshold.
	_, err := svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: item.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Empty(t, notifier.criticals)

	// Landing exactly on 5 does not alert either (strict comparison).
	_, err = svc.RecordOutgoing(context.Background(), dto.CreateOrderRequest{ItemID: item.ID, Quantity: 10})
	require.NoError(t, err)
	assert.Empty(t, notifier.criticals)
}

func TestRecordIncoming_IncrementsWithoutHistoryOrAlert(t *testing.T) {
	itemRepo := newStubItemRepo()
	orderRepo := newStubOrderRepo()
	notifier := &stubNotifier{}
	svc := service.NewInventoryService(itemRepo, orderRepo, notifier)

	item := seedItem(itemRepo, "Bolts", 2)

	resp, err := svc.RecordIncoming(context.Background(), dto.RestockRequest{ItemID: item.ID, Quantity: 100})
	require.NoError(t, err)

	assert.Equal(t, 102, resp.CurrentStock)
	n, _ := orderRepo.CountByItem(context.Background(), item.ID)
	assert.Zero(t, n)
	assert.Empty(t, notifier.criticals)
}

func TestRecordIncoming_UnknownItem(t *testing.T) {
	svc := service.NewInventoryService(newStubItemRepo(), newStubOrderRepo(), &stubNotifier{})

	_, err := svc.RecordIncoming(context.Background(), dto.RestockRequest{ItemID: 42, Quantity: 1})

	assert.ErrorIs(t, err, service.ErrItemNotFound)
}
