package jobs

import (
	"context"
	"log/slog"

	"pharmacy/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentSweepJob periodically cancels gateway orders whose payment was
// never completed, releasing the stock they reserved at checkout.
type PaymentSweepJob struct {
	handler commands.SweepAbandonedPaymentsCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewPaymentSweepJob creates the sweep job with the given cron spec
// (standard five-field format, e.g. "*/5 * * * *").
func NewPaymentSweepJob(
	handler commands.SweepAbandonedPaymentsCommandHandler,
	spec string,
	logger *slog.Logger,
) *PaymentSweepJob {
	return &PaymentSweepJob{
		handler: handler,
		cron:    cron.New(),
		spec:    spec,
		logger:  logger.With("component", "payment_sweep_job"),
	}
}

// Start schedules the sweep. A failing sweep run is logged and retried on
// the next tick; it never takes the process down.
func (j *PaymentSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewSweepAbandonedPaymentsCommand()

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment sweep failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled abandoned gateway orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment sweep job started", "spec", j.spec)
	return nil
}

// Stop stops the sweep job.
func (j *PaymentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment sweep job stopped")
}
