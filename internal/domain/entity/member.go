package entity

import (
	"errors"
	"time"
)

// Member statuses. An invited member becomes active when the invitation
// is accepted.
const (
	MemberStatusActive  = "active"
	MemberStatusInvited = "invited"
)

// Member associates a user with a workspace and a role. The role string is
// interpreted by the authz package; this entity only stores it.
type Member struct {
	ID          string    `bson:"_id" json:"id"`
	WorkspaceID string    `bson:"workspace_id" json:"workspace_id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Email       string    `bson:"email" json:"email"`
	Role        string    `bson:"role" json:"role"`
	Status      string    `bson:"status" json:"status"`
	InvitedBy   string    `bson:"invited_by,omitempty" json:"invited_by,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// NewMember creates a membership record.
func NewMember(id, workspaceID, userID, email, role, status, invitedBy string) (*Member, error) {
	if workspaceID == "" || userID == "" {
		return nil, errors.New("workspace id and user id are required")
	}
	if role == "" {
		return nil, errors.New("member role is required")
	}

	now := time.Now()
	return &Member{
		ID:          id,
		WorkspaceID: workspaceID,
		UserID:      userID,
		Email:       email,
		Role:        role,
		Status:      status,
		InvitedBy:   invitedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
