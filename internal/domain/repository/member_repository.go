package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// MemberRepository persists workspace memberships. The authz evaluator
// never touches storage; every role it sees is resolved through this
// interface first.
type MemberRepository interface {
	// FindByUserAndWorkspace returns the membership of userID in
	// workspaceID, or a not-member error.
	FindByUserAndWorkspace(ctx context.Context, userID, workspaceID string) (*entity.Member, error)

	// FindByWorkspace returns all memberships of a workspace.
	FindByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Member, error)

	// FindWorkspaceIDsByUser returns ids of workspaces the user belongs to.
	FindWorkspaceIDsByUser(ctx context.Context, userID string) ([]string, error)

	// Create inserts a new membership.
	Create(ctx context.Context, member *entity.Member) error

	// UpdateRole sets the member's role.
	UpdateRole(ctx context.Context, workspaceID, userID, role string) error

	// UpdateStatus sets the member's status.
	UpdateStatus(ctx context.Context, workspaceID, userID, status string) error

	// Delete removes a membership.
	Delete(ctx context.Context, workspaceID, userID string) error

	// DeleteByWorkspace removes every membership of a workspace.
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
}
