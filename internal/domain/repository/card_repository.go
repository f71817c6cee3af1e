package repository

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
)

// CardRepository persists cards.
type CardRepository interface {
	// FindByID returns a card by id.
	FindByID(ctx context.Context, id string) (*entity.Card, error)

	// FindByList returns the cards of a list ordered by position.
	FindByList(ctx context.Context, listID string, includeArchived bool) ([]*entity.Card, error)

	// FindByBoard returns every card of a board ordered by list then position.
	FindByBoard(ctx context.Context, boardID string, includeArchived bool) ([]*entity.Card, error)

	// Create inserts a new card.
	Create(ctx context.Context, card *entity.Card) error

	// Update replaces the stored card.
	Update(ctx context.Context, card *entity.Card) error

	// Move sets the card's list and position in one write.
	Move(ctx context.Context, id, listID string, position float64) error

	// UpdatePositions applies id->position in bulk within a list.
	UpdatePositions(ctx context.Context, positions map[string]float64) error

	// Delete removes a card by id.
	Delete(ctx context.Context, id string) error

	// DeleteByBoard removes every card of a board.
	DeleteByBoard(ctx context.Context, boardID string) error
}
