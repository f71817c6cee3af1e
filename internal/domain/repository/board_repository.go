package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// BoardRepository persists boards.
type BoardRepository interface {
	// FindByID returns a board by id.
	FindByID(ctx context.Context, id string) (*entity.Board, error)

	// FindByWorkspace returns the boards of a workspace, unarchived first.
	FindByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*entity.Board, error)

	// Create inserts a new board.
	Create(ctx context.Context, board *entity.Board) error

	// Update replaces the stored board.
	Update(ctx context.Context, board *entity.Board) error

	// Delete removes a board by id.
	Delete(ctx context.Context, id string) error

	// DeleteByWorkspace removes every board of a workspace.
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
}
