package outboxrepo

import (
	"context"
	"time"

	"efood/internal/core/ports"

	"gorm.io/gorm"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stages messages for publication. Seq is assigned by the database.
func (r *GormOutboxRepository) Add(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(messages))
	for _, message := range messages {
		dto := fromPort(message)
		dto.Seq = 0
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished retrieves staged messages in commit order, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("seq ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toPort(dto))
	}

	return messages, nil
}

// MarkPublished records the publication time for the given sequence numbers.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, seqs []int64, publishedAt time.Time) error {
	if len(seqs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("seq IN ?", seqs).
		Update("published_at", publishedAt).Error
}
