package entity

import (
	"errors"
	"time"
)

// Workspace is the top-level container: it owns boards and members.
type Workspace struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// NewWorkspace creates a workspace owned by createdBy.
func NewWorkspace(id, name, description, createdBy string) (*Workspace, error) {
	if name == "" {
		return nil, errors.New("workspace name is required")
	}
	if createdBy == "" {
		return nil, errors.New("workspace creator is required")
	}

	now := time.Now()
	return &Workspace{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// WorkspaceUpdate carries partial updates for a workspace.
type WorkspaceUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
