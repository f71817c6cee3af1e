package entity

import (
	"errors"
	"time"
)

// Card is a work item on a list.
type Card struct {
	ID          string     `bson:"_id" json:"id"`
	ListID      string     `bson:"list_id" json:"list_id"`
	BoardID     string     `bson:"board_id" json:"board_id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Position    float64    `bson:"position" json:"position"`
	DueDate     *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	LabelIDs    []string   `bson:"label_ids,omitempty" json:"label_ids,omitempty"`
	AssigneeIDs []string   `bson:"assignee_ids,omitempty" json:"assignee_ids,omitempty"`
	Archived    bool       `bson:"archived" json:"archived"`
	CreatedBy   string     `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// NewCard creates a card on the given list.
func NewCard(id, listID, boardID, title, description, createdBy string, position float64) (*Card, error) {
	if listID == "" || boardID == "" {
		return nil, errors.New("card list id and board id are required")
	}
	if title == "" {
		return nil, errors.New("card title is required")
	}

	now := time.Now()
	return &Card{
		ID:          id,
		ListID:      listID,
		BoardID:     boardID,
		Title:       title,
		Description: description,
		Position:    position,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CardUpdate carries partial updates for a card.
type CardUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	LabelIDs    *[]string  `json:"label_ids"`
	AssigneeIDs *[]string  `json:"assignee_ids"`
	Archived    *bool      `json:"archived"`
}
