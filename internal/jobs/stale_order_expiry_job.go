// Package jobs contains the scheduled background work of the application,
// built on robfig/cron.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"fruitmall/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderExpiryJob cancels unpaid orders that outlived the payment window
// and returns their reserved stock to the catalog. Runs hourly.
type StaleOrderExpiryJob struct {
	handler       commands.ExpireStaleOrdersCommandHandler
	paymentWindow time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderExpiryJob creates a job that expires orders still unpaid after
// paymentWindow.
func NewStaleOrderExpiryJob(handler commands.ExpireStaleOrdersCommandHandler,
	paymentWindow time.Duration, logger *slog.Logger) *StaleOrderExpiryJob {
	return &StaleOrderExpiryJob{
		handler:       handler,
		paymentWindow: paymentWindow,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "stale_order_expiry_job"),
	}
}

// Start schedules the job to run at the top of every hour.
func (j *StaleOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(time.Now().Add(-j.paymentWindow))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed to build command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order expiry job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *StaleOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order expiry job stopped")
}
