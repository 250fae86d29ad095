package worker

import (
	"context"
	"encoding/json"
	"time"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueAlert  = "jobs:alert"
	QueueReport = "jobs:report"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// LowStockAlertPayload is the job envelope for QueueAlert.
type LowStockAlertPayload struct {
	ItemName   string `json:"item_name"`
	StockLevel int    `json:"stock_level"`
}

// ReportPayload is the job envelope for QueueReport.
type ReportPayload struct {
	Text      string                 `json:"text"`
	Forecasts []dto.ForecastResponse `json:"forecasts"`
}

// Dispatcher enqueues async notification jobs into Redis lists; the worker
// pool dequeues them via BRPOP. It implements service.Notifier: enqueueing
// happens after the enclosing mutation committed, and enqueue failures are
// logged and dropped - never surfaced to the caller.
type Dispatcher struct {
	rdb *redis.Client
}

var _ service.Notifier = (*Dispatcher)(nil)

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) NotifyCriticalItem(ctx context.Context, name string, stockLevel int) {
	err := d.enqueue(ctx, QueueAlert, "low_stock_alert", LowStockAlertPayload{
		ItemName:   name,
		StockLevel: stockLevel,
	})
	if err != nil {
		log.Error().Err(err).Str("item", name).Msg("failed to enqueue low-stock alert")
	}
}

func (d *Dispatcher) NotifyReport(ctx context.Context, fullText string, forecasts []dto.ForecastResponse) {
	err := d.enqueue(ctx, QueueReport, "analytics_report", ReportPayload{
		Text:      fullText,
		Forecasts: forecasts,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue analytics report")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// WorkerHandlers groups the per-queue processors, wired at the composition
// root so the pool has full access to the infrastructure dependencies.
type WorkerHandlers struct {
	Alert  *AlertWorker
	Report *ReportWorker
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP - zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	queues := []string{QueueAlert, QueueReport}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop - waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	switch queue {
	case QueueAlert:
		handlers.Alert.Process(ctx, job.Payload)
	case QueueReport:
		handlers.Report.Process(ctx, job.Payload)
	default:
		log.Warn().Str("queue", queue).Str("type", job.Type).Msg("job from unknown queue")
	}
}
