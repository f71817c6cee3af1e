package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// WorkspaceRepository persists workspaces.
type WorkspaceRepository interface {
	// FindByID returns a workspace by id.
	FindByID(ctx context.Context, id string) (*entity.Workspace, error)

	// FindByIDs returns the workspaces with the given ids.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Workspace, error)

	// Create inserts a new workspace.
	Create(ctx context.Context, workspace *entity.Workspace) error

	// Update replaces the stored workspace.
	Update(ctx context.Context, workspace *entity.Workspace) error

	// Delete removes a workspace by id.
	Delete(ctx context.Context, id string) error
}
