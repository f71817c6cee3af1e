package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// LabelRepository persists board labels.
type LabelRepository interface {
	// FindByID returns a label by id.
	FindByID(ctx context.Context, id string) (*entity.Label, error)

	// FindByBoard returns the labels of a board.
	FindByBoard(ctx context.Context, boardID string) ([]*entity.Label, error)

	// Create inserts a new label.
	Create(ctx context.Context, label *entity.Label) error

	// Update replaces the stored label.
	Update(ctx context.Context, label *entity.Label) error

	// Delete removes a label by id.
	Delete(ctx context.Context, id string) error

	// DeleteByBoard removes every label of a board.
	DeleteByBoard(ctx context.Context, boardID string) error
}
