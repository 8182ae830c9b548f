package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BacklogProcessingJob drains the order backlog on a schedule.
// Runs every second and processes at most one order per tick, priority
// lane first.
type BacklogProcessingJob struct {
	handler commands.ProcessNextOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogProcessingJob creates a job that processes pending orders.
func NewBacklogProcessingJob(handler commands.ProcessNextOrderCommandHandler, logger *slog.Logger) *BacklogProcessingJob {
	return &BacklogProcessingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "backlog_processing_job"),
	}
}

// Start begins the backlog processing job to run every second.
func (j *BacklogProcessingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessNextOrderCommand()

		o, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// An empty backlog is the expected idle state
			if !errors.Is(err, commands.ErrBacklogEmpty) {
				j.logger.ErrorContext(ctx, "Backlog processing job failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Order processed",
			"orderId", o.ID().String(), "status", o.Status().String())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog processing job started (running every second)")
	return nil
}

// Stop stops the backlog processing job.
func (j *BacklogProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog processing job stopped")
}
