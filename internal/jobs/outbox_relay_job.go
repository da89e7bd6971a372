package jobs

import (
	"context"
	"log/slog"
	"time"

	"efood/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many staged events one relay tick publishes.
const relayBatchSize = 100

// OutboxRelayJob drains the transactional outbox to the message broker.
// Runs every second, publishing staged events in commit order. Delivery is
// at-least-once: a crash between publish and mark causes a replay on the
// next tick, never a loss.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new job for relaying outbox messages.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the outbox relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the outbox relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relay publishes one batch of staged events, oldest first. Publication
// stops at the first broker error so the commit order is never reordered
// by partial retries.
func (j *OutboxRelayJob) relay(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	published := make([]int64, 0, len(messages))
	for _, message := range messages {
		if err = j.publisher.Publish(ctx, message.EventType, message.Payload); err != nil {
			break
		}
		published = append(published, message.Seq)
	}

	if len(published) > 0 {
		if markErr := j.outbox.MarkPublished(ctx, published, time.Now()); markErr != nil {
			return markErr
		}
	}

	return err
}
