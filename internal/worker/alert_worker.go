package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlert and sends the SMS through the
// circuit breaker. Failures are logged and pushed to the DLQ for inspection -
// alerts are best-effort and are never retried.

import (
	"context"
	"encoding/json"
	"fmt"

	"smartwarehouse/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AlertWorker delivers single-item low-stock SMS alerts.
type AlertWorker struct {
	sms *infra.TwilioClient
	cb  *infra.CircuitBreaker
	rdb *redis.Client
}

func NewAlertWorker(sms *infra.TwilioClient, cb *infra.CircuitBreaker, rdb *redis.Client) *AlertWorker {
	return &AlertWorker{sms: sms, cb: cb, rdb: rdb}
}

func (w *AlertWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return
	}

	body := fmt.Sprintf("🚨 WAREHOUSE ALERT 🚨\nItem: %s\nStock Level: %d (CRITICAL)\nAction: Reorder immediately.",
		payload.ItemName, payload.StockLevel)

	var sid string
	err := w.cb.Execute(func() error {
		var sendErr error
		sid, sendErr = w.sms.SendSMS(ctx, body)
		return sendErr
	})
	if err != nil {
		log.Error().Err(err).Str("item", payload.ItemName).Msg("alert_worker: failed to send SMS")
		SendToDLQ(ctx, w.rdb, QueueAlert, "low_stock_alert", raw, err.Error())
		return
	}
	log.Info().Str("item", payload.ItemName).Str("sid", sid).Msg("alert_worker: SMS sent")
}
