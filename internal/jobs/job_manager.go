package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"efood/internal/core/application/usecases/commands"
	"efood/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob          *OutboxRelayJob
	staleOrderEscalationJob *StaleOrderEscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the outbox, the publisher and command handlers as dependencies
// to wire up the job execution.
func NewJobManager(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	escalateHandler commands.EscalateStaleOrdersCommandHandler,
	waitingTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob:          NewOutboxRelayJob(outbox, publisher, logger),
		staleOrderEscalationJob: NewStaleOrderEscalationJob(escalateHandler, waitingTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.staleOrderEscalationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start stale order escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderEscalationJob.Stop()
	jm.outboxRelayJob.Stop()
}
