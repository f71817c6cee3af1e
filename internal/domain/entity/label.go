package entity

import (
	"errors"
	"time"
)

// Label is a named color tag scoped to a board.
type Label struct {
	ID        string    `bson:"_id" json:"id"`
	BoardID   string    `bson:"board_id" json:"board_id"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color" json:"color"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewLabel creates a label on the given board.
func NewLabel(id, boardID, name, color string) (*Label, error) {
	if boardID == "" {
		return nil, errors.New("label board id is required")
	}
	if color == "" {
		return nil, errors.New("label color is required")
	}

	now := time.Now()
	return &Label{
		ID:        id,
		BoardID:   boardID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
