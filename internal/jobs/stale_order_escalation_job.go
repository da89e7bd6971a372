package jobs

import (
	"context"
	"log/slog"
	"time"

	"efood/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderEscalationJob sweeps the marketplace pool for orders that have
// been waiting longer than the configured TTL and flags them for admin
// attention. Runs every thirty seconds; escalated orders stay in the pool.
type StaleOrderEscalationJob struct {
	handler    commands.EscalateStaleOrdersCommandHandler
	waitingTTL time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleOrderEscalationJob creates a new job for escalating stale orders.
func NewStaleOrderEscalationJob(
	handler commands.EscalateStaleOrdersCommandHandler,
	waitingTTL time.Duration,
	logger *slog.Logger,
) *StaleOrderEscalationJob {
	return &StaleOrderEscalationJob{
		handler:    handler,
		waitingTTL: waitingTTL,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_order_escalation_job"),
	}
}

// Start begins the stale order escalation job to run every thirty seconds.
func (j *StaleOrderEscalationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewEscalateStaleOrdersCommand(j.waitingTTL)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order escalation job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order escalation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order escalation job started (running every 30 seconds)")
	return nil
}

// Stop stops the stale order escalation job.
func (j *StaleOrderEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order escalation job stopped")
}
