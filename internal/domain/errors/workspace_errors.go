package errors

import "fmt"

// WorkspaceError represents errors raised while resolving or enforcing
// workspace membership.
type WorkspaceError struct {
	Type        string
	Message     string
	UserID      string
	WorkspaceID string
	Cause       error
}

func (e *WorkspaceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (user: %s, workspace: %s) - %v",
			e.Type, e.Message, e.UserID, e.WorkspaceID, e.Cause)
	}
	return fmt.Sprintf("%s: %s (user: %s, workspace: %s)",
		e.Type, e.Message, e.UserID, e.WorkspaceID)
}

func (e *WorkspaceError) Unwrap() error {
	return e.Cause
}

// Workspace error types
const (
	ErrTypeWorkspaceNotFound       = "WORKSPACE_NOT_FOUND"
	ErrTypeUserNotMember           = "USER_NOT_MEMBER"
	ErrTypeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	ErrTypeMemberNotFound          = "MEMBER_NOT_FOUND"
	ErrTypeMemberAlreadyExists     = "MEMBER_ALREADY_EXISTS"
	ErrTypeRoleChangeDenied        = "ROLE_CHANGE_DENIED"
	ErrTypeOwnerNotRemovable       = "OWNER_NOT_REMOVABLE"
)

// NewWorkspaceNotFoundError creates a new workspace not found error
func NewWorkspaceNotFoundError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeWorkspaceNotFound,
		Message:     "workspace not found",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}

// NewUserNotMemberError creates a new user not member error
func NewUserNotMemberError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeUserNotMember,
		Message:     "user is not a member of the workspace",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}

// NewInsufficientPermissionsError creates a new insufficient permissions error
func NewInsufficientPermissionsError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeInsufficientPermissions,
		Message:     "user does not have sufficient permissions for this operation",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}

// NewMemberNotFoundError creates a new member not found error
func NewMemberNotFoundError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeMemberNotFound,
		Message:     "member not found in workspace",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}

// NewMemberAlreadyExistsError creates a new member already exists error
func NewMemberAlreadyExistsError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeMemberAlreadyExists,
		Message:     "user is already a member of the workspace",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}

// NewRoleChangeDeniedError creates a new role change denied error
func NewRoleChangeDeniedError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeRoleChangeDenied,
		Message:     "role change is not permitted for this actor and target",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}

// NewOwnerNotRemovableError creates a new owner not removable error
func NewOwnerNotRemovableError(userID, workspaceID string) *WorkspaceError {
	return &WorkspaceError{
		Type:        ErrTypeOwnerNotRemovable,
		Message:     "the workspace owner cannot be removed",
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
}
