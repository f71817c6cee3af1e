package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// ActivityRepository persists the append-only activity feed.
type ActivityRepository interface {
	// Append inserts one activity entry.
	Append(ctx context.Context, activity *entity.Activity) error

	// FindByWorkspace returns workspace activity, newest first.
	FindByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]*entity.Activity, error)

	// FindByBoard returns board activity, newest first.
	FindByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entity.Activity, error)

	// DeleteByWorkspace removes every entry of a workspace's feed.
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
}
