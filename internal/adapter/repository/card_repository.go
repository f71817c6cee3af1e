package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type cardRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewCardRepository creates a MongoDB-backed card repository.
func NewCardRepository(db *mongo.Database, logger *zap.Logger) domainRepo.CardRepository {
	return &cardRepository{
		collection: db.Collection("cards"),
		logger:     logger,
	}
}

func (r *cardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	var card entity.Card
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("card", id, err)
		}
		r.logger.Error("failed to find card",
			zap.String("card_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) FindByList(ctx context.Context, listID string, includeArchived bool) ([]*entity.Card, error) {
	filter := bson.M{"list_id": listID}
	if !includeArchived {
		filter["archived"] = false
	}
	return r.find(ctx, filter, bson.D{{Key: "position", Value: 1}})
}

func (r *cardRepository) FindByBoard(ctx context.Context, boardID string, includeArchived bool) ([]*entity.Card, error) {
	filter := bson.M{"board_id": boardID}
	if !includeArchived {
		filter["archived"] = false
	}
	return r.find(ctx, filter, bson.D{{Key: "list_id", Value: 1}, {Key: "position", Value: 1}})
}

func (r *cardRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]*entity.Card, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		r.logger.Error("failed to find cards", zap.Error(err))
		return nil, fmt.Errorf("failed to find cards: %w", err)
	}
	defer cursor.Close(ctx)

	cards := []*entity.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	if _, err := r.collection.InsertOne(ctx, card); err != nil {
		r.logger.Error("failed to create card",
			zap.String("card_id", card.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	card.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": card.ID}, card)
	if err != nil {
		r.logger.Error("failed to update card",
			zap.String("card_id", card.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update card: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("card", card.ID, nil)
	}
	return nil
}

func (r *cardRepository) Move(ctx context.Context, id, listID string, position float64) error {
	update := bson.M{"$set": bson.M{
		"list_id":    listID,
		"position":   position,
		"updated_at": time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.logger.Error("failed to move card",
			zap.String("card_id", id),
			zap.String("list_id", listID),
			zap.Error(err))
		return fmt.Errorf("failed to move card: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("card", id, nil)
	}
	return nil
}

func (r *cardRepository) UpdatePositions(ctx context.Context, positions map[string]float64) error {
	if len(positions) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(positions))
	now := time.Now()
	for id, position := range positions {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"position": position, "updated_at": now}}))
	}

	if _, err := r.collection.BulkWrite(ctx, models); err != nil {
		r.logger.Error("failed to bulk update card positions",
			zap.Int("count", len(positions)),
			zap.Error(err))
		return fmt.Errorf("failed to bulk update card positions: %w", err)
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete card",
			zap.String("card_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("card", id, nil)
	}
	return nil
}

func (r *cardRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"board_id": boardID}); err != nil {
		r.logger.Error("failed to delete board cards",
			zap.String("board_id", boardID),
			zap.Error(err))
		return fmt.Errorf("failed to delete board cards: %w", err)
	}
	return nil
}
