package worker

// forecast_cron.go
// Optional background goroutine that runs the full-inventory forecast on a
// fixed interval. Each run dispatches its report through the normal notifier
// path, so a scheduled run behaves exactly like an on-demand one.

import (
	"context"
	"time"

	"smartwarehouse/internal/dto"

	"github.com/rs/zerolog/log"
)

// ForecastRunner is the slice of ForecastService the cron needs.
type ForecastRunner interface {
	ForecastAll(ctx context.Context) ([]dto.ForecastResponse, error)
}

// StartForecastCron launches the scheduled forecast loop. everyHours <= 0
// disables it. Respects the context for graceful shutdown.
func StartForecastCron(ctx context.Context, runner ForecastRunner, everyHours int) {
	if everyHours <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(time.Duration(everyHours) * time.Hour)
		defer ticker.Stop()

		log.Info().Int("every_hours", everyHours).Msg("forecast_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("forecast_cron: shutting down")
				return
			case <-ticker.C:
				forecasts, err := runner.ForecastAll(ctx)
				if err != nil {
					log.Error().Err(err).Msg("forecast_cron: forecast run failed")
					continue
				}
				log.Info().Int("items", len(forecasts)).Msg("forecast_cron: forecast run completed")
			}
		}
	}()
}
