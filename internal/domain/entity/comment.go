package entity

import (
	"errors"
	"time"
)

// Comment is a message a member writes on a card.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	CardID    string    `bson:"card_id" json:"card_id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewComment creates a comment by authorID on the given card.
func NewComment(id, cardID, authorID, body string) (*Comment, error) {
	if cardID == "" || authorID == "" {
		return nil, errors.New("comment card id and author id are required")
	}
	if body == "" {
		return nil, errors.New("comment body is required")
	}

	now := time.Now()
	return &Comment{
		ID:        id,
		CardID:    cardID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
