package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/model"
	"smartwarehouse/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	// criticalDaysThreshold classifies an item as critical when its predicted
	// days-until-stockout is strictly below it. Fixed business rule.
	criticalDaysThreshold = 7
	// noHistoryDaysSentinel stands in for "cannot estimate" when an item has no
	// consumption signal. Large enough to never classify as critical; not a
	// real prediction.
	noHistoryDaysSentinel = 999

	stockoutDateLayout = "2006-01-02"
)

// ForecastService turns order history into burn rates and stockout forecasts.
// Computation is read-only and safe to run concurrently with mutations; it may
// observe slightly stale stock for items updated mid-scan.
type ForecastService interface {
	// BurnRate is the average units sold per day over the order history,
	// rounded to 2 decimals. Zero means "no history", never "dead stock" -
	// the estimator does not validate order data.
	BurnRate(orders []model.Order) decimal.Decimal
	// ForecastItem computes one item's forecast at the given reference time.
	ForecastItem(item *model.Item, orders []model.Order, now time.Time) dto.ForecastResponse
	// ForecastAll forecasts every item in listing order and dispatches exactly
	// one report notification as a side effect of the run.
	ForecastAll(ctx context.Context) ([]dto.ForecastResponse, error)
}

type forecastService struct {
	items    repository.ItemRepository
	orders   repository.OrderRepository
	notifier Notifier
}

func NewForecastService(items repository.ItemRepository, orders repository.OrderRepository, notifier Notifier) ForecastService {
	return &forecastService{items: items, orders: orders, notifier: notifier}
}

func (s *forecastService) BurnRate(orders []model.Order) decimal.Decimal {
	if len(orders) == 0 {
		return decimal.Zero
	}

	first, last := orders[0].Date, orders[0].Date
	var total int64
	for _, o := range orders {
		if o.Date.Before(first) {
			first = o.Date
		}
		if o.Date.After(last) {
			last = o.Date
		}
		total += int64(o.Quantity)
	}

	// Whole days between first and last order, plus one so a single-day burst
	// reports that day's full rate instead of dividing by zero.
	spanDays := int64(last.Sub(first).Hours()/24) + 1
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(spanDays)).Round(2)
}

func (s *forecastService) ForecastItem(item *model.Item, orders []model.Order, now time.Time) dto.ForecastResponse {
	rate := s.BurnRate(orders)

	var days int
	var stockoutDate time.Time
	if rate.IsZero() {
		days = noHistoryDaysSentinel
		stockoutDate = now
	} else {
		// Integer truncation biases toward earlier, more conservative estimates.
		days = int(decimal.NewFromInt(int64(item.CurrentStock)).Div(rate).IntPart())
		stockoutDate = now.AddDate(0, 0, days)
	}

	recommendation := "Healthy"
	if days < criticalDaysThreshold {
		recommendation = "CRITICAL ORDER!"
	}

	return dto.ForecastResponse{
		ItemID:                item.ID,
		ItemName:              item.Name,
		CurrentStock:          item.CurrentStock,
		AvgDailySales:         rate,
		DaysUntilOutOfStock:   days,
		PredictedStockoutDate: stockoutDate.Format(stockoutDateLayout),
		Recommendation:        recommendation,
	}
}

func (s *forecastService) ForecastAll(ctx context.Context) ([]dto.ForecastResponse, error) {
	items, err := s.items.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	forecasts := make([]dto.ForecastResponse, 0, len(items))
	reportLines := []string{"Warehouse Analytics Report:"}

	for i := range items {
		item := &items[i]
		orders, err := s.orders.ListByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}

		f := s.ForecastItem(item, orders, now)
		forecasts = append(forecasts, f)

		// Only critical items make the text message, to keep the SMS short.
		if f.DaysUntilOutOfStock < criticalDaysThreshold {
			reportLines = append(reportLines, fmt.Sprintf("- %s: %d left (%d days)",
				f.ItemName, f.CurrentStock, f.DaysUntilOutOfStock))
		}
	}

	if len(reportLines) == 1 {
		reportLines = append(reportLines, "All inventory is currently Healthy!")
	}

	// Forecasting and alerting are coupled: every run produces exactly one
	// outbound notification, dispatched after the report is assembled.
	if s.notifier != nil {
		s.notifier.NotifyReport(ctx, strings.Join(reportLines, "\n"), forecasts)
	}

	return forecasts, nil
}
