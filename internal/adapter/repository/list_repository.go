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

type listRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewListRepository creates a MongoDB-backed list repository.
func NewListRepository(db *mongo.Database, logger *zap.Logger) domainRepo.ListRepository {
	return &listRepository{
		collection: db.Collection("lists"),
		logger:     logger,
	}
}

func (r *listRepository) FindByID(ctx context.Context, id string) (*entity.List, error) {
	var list entity.List
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("list", id, err)
		}
		r.logger.Error("failed to find list",
			zap.String("list_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	return &list, nil
}

func (r *listRepository) FindByBoard(ctx context.Context, boardID string, includeArchived bool) ([]*entity.List, error) {
	filter := bson.M{"board_id": boardID}
	if !includeArchived {
		filter["archived"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to find board lists",
			zap.String("board_id", boardID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find board lists: %w", err)
	}
	defer cursor.Close(ctx)

	lists := []*entity.List{}
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, fmt.Errorf("failed to decode lists: %w", err)
	}
	return lists, nil
}

func (r *listRepository) Create(ctx context.Context, list *entity.List) error {
	if _, err := r.collection.InsertOne(ctx, list); err != nil {
		r.logger.Error("failed to create list",
			zap.String("list_id", list.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create list: %w", err)
	}
	return nil
}

func (r *listRepository) Update(ctx context.Context, list *entity.List) error {
	list.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": list.ID}, list)
	if err != nil {
		r.logger.Error("failed to update list",
			zap.String("list_id", list.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update list: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("list", list.ID, nil)
	}
	return nil
}

func (r *listRepository) UpdatePosition(ctx context.Context, id string, position float64) error {
	update := bson.M{"$set": bson.M{"position": position, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.logger.Error("failed to update list position",
			zap.String("list_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to update list position: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("list", id, nil)
	}
	return nil
}

func (r *listRepository) UpdatePositions(ctx context.Context, positions map[string]float64) error {
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
		r.logger.Error("failed to bulk update list positions",
			zap.Int("count", len(positions)),
			zap.Error(err))
		return fmt.Errorf("failed to bulk update list positions: %w", err)
	}
	return nil
}

func (r *listRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete list",
			zap.String("list_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete list: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("list", id, nil)
	}
	return nil
}

func (r *listRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"board_id": boardID}); err != nil {
		r.logger.Error("failed to delete board lists",
			zap.String("board_id", boardID),
			zap.Error(err))
		return fmt.Errorf("failed to delete board lists: %w", err)
	}
	return nil
}
