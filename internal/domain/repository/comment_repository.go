package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// CommentRepository persists card comments.
type CommentRepository interface {
	// FindByID returns a comment by id.
	FindByID(ctx context.Context, id string) (*entity.Comment, error)

	// FindByCard returns the comments of a card, newest first.
	FindByCard(ctx context.Context, cardID string, limit, offset int) ([]*entity.Comment, error)

	// Create inserts a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update replaces the stored comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by id.
	Delete(ctx context.Context, id string) error

	// DeleteByCards removes every comment of the given cards.
	DeleteByCards(ctx context.Context, cardIDs []string) error
}
