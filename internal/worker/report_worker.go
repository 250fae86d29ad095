package worker

// report_worker.go
// Processes analytics report jobs from QueueReport. The short text summary
// goes out via SMS; when a manager email is configured the full forecast table
// is also rendered to PDF and mailed. Every delivery failure here is terminal:
// logged, DLQ'd, never retried, never visible to the forecast caller.

import (
	"context"
	"encoding/json"
	"time"

	"smartwarehouse/internal/config"
	"smartwarehouse/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReportWorker delivers the full-inventory analytics report.
type ReportWorker struct {
	sms         *infra.TwilioClient
	cb          *infra.CircuitBreaker
	mailer      *infra.Mailer
	rdb         *redis.Client
	managerMail string
	storagePath string
}

func NewReportWorker(cfg *config.Config, sms *infra.TwilioClient, cb *infra.CircuitBreaker, mailer *infra.Mailer, rdb *redis.Client) *ReportWorker {
	return &ReportWorker{
		sms:         sms,
		cb:          cb,
		mailer:      mailer,
		rdb:         rdb,
		managerMail: cfg.ManagerEmail,
		storagePath: cfg.ReportStoragePath,
	}
}

func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}

	err := w.cb.Execute(func() error {
		_, sendErr := w.sms.SendSMS(ctx, payload.Text)
		return sendErr
	})
	if err != nil {
		log.Error().Err(err).Msg("report_worker: failed to send report SMS")
		SendToDLQ(ctx, w.rdb, QueueReport, "analytics_report", raw, err.Error())
	} else {
		log.Info().Int("forecasts", len(payload.Forecasts)).Msg("report_worker: report SMS sent")
	}

	// Email channel is optional and independent of the SMS outcome.
	if w.managerMail == "" || w.mailer == nil || !w.mailer.Configured() {
		return
	}

	pdfPath, err := infra.RenderForecastPDF(payload.Forecasts, w.storagePath, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("report_worker: failed to render PDF")
		pdfPath = "" // send the text-only email anyway
	}

	subject := "Warehouse Analytics Report - " + time.Now().Format("02/01/2006")
	if err := w.mailer.SendReport(w.managerMail, subject, payload.Text, pdfPath); err != nil {
		log.Error().Err(err).Str("to", w.managerMail).Msg("report_worker: failed to email report")
		return
	}
	log.Info().Str("to", w.managerMail).Msg("report_worker: report emailed")
}
