package entity

import (
	"errors"
	"time"
)

// Board is a kanban board inside a workspace.
type Board struct {
	ID          string    `bson:"_id" json:"id"`
	WorkspaceID string    `bson:"workspace_id" json:"workspace_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Background  string    `bson:"background,omitempty" json:"background,omitempty"`
	Archived    bool      `bson:"archived" json:"archived"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// NewBoard creates a board in the given workspace.
func NewBoard(id, workspaceID, name, description, background, createdBy string) (*Board, error) {
	if workspaceID == "" {
		return nil, errors.New("board workspace id is required")
	}
	if name == "" {
		return nil, errors.New("board name is required")
	}

	now := time.Now()
	return &Board{
		ID:          id,
		WorkspaceID: workspaceID,
		Name:        name,
		Description: description,
		Background:  background,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// BoardUpdate carries partial updates for a board.
type BoardUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Background  *string `json:"background"`
	Archived    *bool   `json:"archived"`
}
