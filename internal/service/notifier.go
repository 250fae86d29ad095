package service

import (
	"context"

	"smartwarehouse/internal/dto"
)

// Notifier delivers alerts to the warehouse manager. Both methods are
// fire-and-forget: they hand the message off (e.g. to an async job queue) and
// return immediately. Delivery failures are logged downstream and never
// surfaced to the caller - a committed mutation is never rolled back because
// an SMS could not be sent.
type Notifier interface {
	// NotifyCriticalItem alerts that one item just dropped below the low-stock
	// threshold.
	NotifyCriticalItem(ctx context.Context, name string, stockLevel int)
	// NotifyReport dispatches the full analytics report. The forecast rows
	// accompany the text so downstream channels can render richer formats.
	NotifyReport(ctx context.Context, fullText string, forecasts []dto.ForecastResponse)
}
