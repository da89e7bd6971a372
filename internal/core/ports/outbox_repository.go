package ports

import (
	"context"
	"time"
)

// OutboxMessage is one domain event staged for publication. Messages are
// written in the same transaction as the state change that produced them,
// so an event exists if and only if its transition committed.
//
// Seq is a storage-assigned monotonically increasing cursor: consumers that
// track the highest Seq they have seen can detect gaps and replays.
type OutboxMessage struct {
	Seq         int64
	EventType   string
	OrderID     string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// OutboxRepository defines the persistence contract for the transactional
// outbox. Add runs inside the command's transaction; the relay job reads
// and marks messages outside of it.
type OutboxRepository interface {
	// Add stages messages for publication within the current transaction.
	// Seq is assigned by storage on insert.
	Add(ctx context.Context, messages []OutboxMessage) error

	// GetUnpublished retrieves up to limit unpublished messages ordered by
	// Seq ascending, so publication preserves the commit order.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the messages with the given seqs went out.
	// Delivery is at-least-once: a crash between publish and mark causes a
	// replay, never a loss.
	MarkPublished(ctx context.Context, seqs []int64, publishedAt time.Time) error
}
