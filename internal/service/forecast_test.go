package service_test

import (
	"context"
	"testing"
	"time"

	"smartwarehouse/internal/model"
	"smartwarehouse/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func ordersFor(itemID uint, quantities map[int]int) []model.Order {
	var orders []model.Order
	for offset, qty := range quantities {
		orders = append(orders, model.Order{ItemID: itemID, Quantity: qty, Date: day(offset)})
	}
	return orders
}

func TestBurnRate_NoHistory(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)

	rate := svc.BurnRate(nil)

	assert.True(t, rate.IsZero())
}

func TestBurnRate_SingleDay(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)

	rate := svc.BurnRate(ordersFor(1, map[int]int{0: 10}))

	assert.Equal(t, "10.00", rate.StringFixed(2))
}

func TestBurnRate_SpansDatesInclusive(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)

	// 5 + 7 units over a 3-day window (both endpoints counted).
	rate := svc.BurnRate(ordersFor(1, map[int]int{0: 5, 2: 7}))

	assert.Equal(t, "4.00", rate.StringFixed(2))
}

func TestBurnRate_RoundsToTwoDecimals(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)

	// 10 units over 3 days = 3.333... → 3.33.
	rate := svc.BurnRate(ordersFor(1, map[int]int{0: 4, 2: 6}))

	assert.Equal(t, "3.33", rate.StringFixed(2))
}

func TestForecastItem_NoHistorySentinel(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)
	now := day(0)

	f := svc.ForecastItem(&model.Item{ID: 1, Name: "Bolts", CurrentStock: 50}, nil, now)

	assert.Equal(t, 999, f.DaysUntilOutOfStock)
	assert.Equal(t, now.Format("2006-01-02"), f.PredictedStockoutDate)
	assert.Equal(t, "Healthy", f.Recommendation)
	assert.True(t, f.AvgDailySales.IsZero())
}

func TestForecastItem_CriticalBelowSevenDays(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)
	now := day(10)

	// Rate 2/day, stock 10 → 5 days, strictly below the 7-day threshold.
	f := svc.ForecastItem(&model.Item{ID: 1, Name: "Bolts", CurrentStock: 10},
		ordersFor(1, map[int]int{0: 2, 1: 2}), now)

	assert.Equal(t, 5, f.DaysUntilOutOfStock)
	assert.Equal(t, "CRITICAL ORDER!", f.Recommendation)
	assert.Equal(t, now.AddDate(0, 0, 5).Format("2006-01-02"), f.PredictedStockoutDate)
}

func TestForecastItem_HealthyAtOrAboveThreshold(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)

	// Rate 2/day, stock 50 → 25 days.
	f := svc.ForecastItem(&model.Item{ID: 1, Name: "Bolts", CurrentStock: 50},
		ordersFor(1, map[int]int{0: 2, 1: 2}), day(10))
	assert.Equal(t, 25, f.DaysUntilOutOfStock)
	assert.Equal(t, "Healthy", f.Recommendation)

	// Exactly 7 days is not critical.
	f = svc.ForecastItem(&model.Item{ID: 1, Name: "Bolts", CurrentStock: 14},
		ordersFor(1, map[int]int{0: 2, 1: 2}), day(10))
	assert.Equal(t, 7, f.DaysUntilOutOfStock)
	assert.Equal(t, "Healthy", f.Recommendation)
}

func TestForecastItem_TruncatesFractionalDays(t *testing.T) {
	svc := service.NewForecastService(newStubItemRepo(), newStubOrderRepo(), nil)

	// Stock 10 at 3/day = 3.33 days → truncated to 3, never rounded up.
	f := svc.ForecastItem(&model.Item{ID: 1, Name: "Bolts", CurrentStock: 10},
		ordersFor(1, map[int]int{0: 3, 1: 3}), day(10))

	assert.Equal(t, decimal.NewFromInt(3).StringFixed(2), f.AvgDailySales.StringFixed(2))
	assert.Equal(t, 3, f.DaysUntilOutOfStock)
}

func TestForecastAll_DispatchesSingleReport(t *testing.T) {
	itemRepo := newStubItemRepo()
	orderRepo := newStubOrderRepo()
	notifier := &stubNotifier{}
	svc := service.NewForecastService(itemRepo, orderRepo, notifier)

	critical := seedItem(itemRepo, "Bolts", 10)
	seedItem(itemRepo, "Washers", 500)
	for _, o := range ordersFor(critical.ID, map[int]int{0: 2, 1: 2}) {
		require.NoError(t, orderRepo.CreateTx(nil, &o))
	}

	forecasts, err := svc.ForecastAll(context.Background())
	require.NoError(t, err)

	require.Len(t, forecasts, 2)
	require.Len(t, notifier.reports, 1)
	assert.Contains(t, notifier.reports[0], "Warehouse Analytics Report:")
	assert.Contains(t, notifier.reports[0], "- Bolts: 10 left (5 days)")
	assert.NotContains(t, notifier.reports[0], "Washers")
	assert.Equal(t, forecasts, notifier.forecasts[0])
}

func TestForecastAll_AllHealthyReport(t *testing.T) {
	itemRepo := newStubItemRepo()
	notifier := &stubNotifier{}
	svc := service.NewForecastService(itemRepo, newStubOrderRepo(), notifier)

	seedItem(itemRepo, "Bolts", 500)

	_, err := svc.ForecastAll(context.Background())
	require.NoError(t, err)

	require.Len(t, notifier.reports, 1)
	assert.Contains(t, notifier.reports[0], "All inventory is currently Healthy!")
}

func TestForecastAll_ReadOnlyAndRepeatable(t *testing.T) {
	itemRepo := newStubItemRepo()
	orderRepo := newStubOrderRepo()
	notifier := &stubNotifier{}
	svc := service.NewForecastService(itemRepo, orderRepo, notifier)

	item := seedItem(itemRepo, "Bolts", 40)
	for _, o := range ordersFor(item.ID, map[int]int{0: 2, 1: 2}) {
		require.NoError(t, orderRepo.CreateTx(nil, &o))
	}

	first, err := svc.ForecastAll(context.Background())
	require.NoError(t, err)
	second, err := svc.ForecastAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 40, item.CurrentStock)
	n, _ := orderRepo.CountByItem(context.Background(), item.ID)
	assert.EqualValues(t, 2, n)
	assert.Len(t, notifier.reports, 2)
}
