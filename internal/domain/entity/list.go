package entity

import (
	"errors"
	"time"
)

// List is an ordered column on a board. Position is a float so a list can
// be dropped between two neighbours without rewriting the whole board; the
// list usecase renormalises positions when midpoints run out of precision.
type List struct {
	ID        string    `bson:"_id" json:"id"`
	BoardID   string    `bson:"board_id" json:"board_id"`
	Name      string    `bson:"name" json:"name"`
	Position  float64   `bson:"position" json:"position"`
	Archived  bool      `bson:"archived" json:"archived"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewList creates a list on the given board at the given position.
func NewList(id, boardID, name string, position float64) (*List, error) {
	if boardID == "" {
		return nil, errors.New("list board id is required")
	}
	if name == "" {
		return nil, errors.New("list name is required")
	}

	now := time.Now()
	return &List{
		ID:        id,
		BoardID:   boardID,
		Name:      name,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
