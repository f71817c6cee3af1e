package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// ListRepository persists board lists.
type ListRepository interface {
	// FindByID returns a list by id.
	FindByID(ctx context.Context, id string) (*entity.List, error)

	// FindByBoard returns the lists of a board ordered by position.
	FindByBoard(ctx context.Context, boardID string, includeArchived bool) ([]*entity.List, error)

	// Create inserts a new list.
	Create(ctx context.Context, list *entity.List) error

	// Update replaces the stored list.
	Update(ctx context.Context, list *entity.List) error

	// UpdatePosition sets a single list's position.
	UpdatePosition(ctx context.Context, id string, position float64) error

	// UpdatePositions applies id->position in bulk, used when a board's
	// list positions are renormalised.
	UpdatePositions(ctx context.Context, positions map[string]float64) error

	// Delete removes a list by id.
	Delete(ctx context.Context, id string) error

	// DeleteByBoard removes every list of a board.
	DeleteByBoard(ctx context.Context, boardID string) error
}
