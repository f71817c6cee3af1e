package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// AttachmentRepository persists attachment metadata. The bytes themselves
// live in object storage behind FileRepository.
type AttachmentRepository interface {
	// FindByID returns an attachment by id.
	FindByID(ctx context.Context, id string) (*entity.Attachment, error)

	// FindByCard returns the attachments of a card.
	FindByCard(ctx context.Context, cardID string) ([]*entity.Attachment, error)

	// FindByCards returns the attachments of the given cards.
	FindByCards(ctx context.Context, cardIDs []string) ([]*entity.Attachment, error)

	// Create inserts a new attachment record.
	Create(ctx context.Context, attachment *entity.Attachment) error

	// Delete removes an attachment record by id.
	Delete(ctx context.Context, id string) error

	// DeleteByCards removes every attachment record of the given cards.
	DeleteByCards(ctx context.Context, cardIDs []string) error
}
