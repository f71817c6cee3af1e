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

type labelRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewLabelRepository creates a MongoDB-backed label repository.
func NewLabelRepository(db *mongo.Database, logger *zap.Logger) domainRepo.LabelRepository {
	return &labelRepository{
		collection: db.Collection("labels"),
		logger:     logger,
	}
}

func (r *labelRepository) FindByID(ctx context.Context, id string) (*entity.Label, error) {
	var label entity.Label
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&label)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("label", id, err)
		}
		r.logger.Error("failed to find label",
			zap.String("label_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find label: %w", err)
	}
	return &label, nil
}

func (r *labelRepository) FindByBoard(ctx context.Context, boardID string) ([]*entity.Label, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"board_id": boardID}, opts)
	if err != nil {
		r.logger.Error("failed to find board labels",
			zap.String("board_id", boardID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find board labels: %w", err)
	}
	defer cursor.Close(ctx)

	labels := []*entity.Label{}
	if err := cursor.All(ctx, &labels); err != nil {
		return nil, fmt.Errorf("failed to decode labels: %w", err)
	}
	return labels, nil
}

func (r *labelRepository) Create(ctx context.Context, label *entity.Label) error {
	if _, err := r.collection.InsertOne(ctx, label); err != nil {
		r.logger.Error("failed to create label",
			zap.String("label_id", label.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create label: %w", err)
	}
	return nil
}

func (r *labelRepository) Update(ctx context.Context, label *entity.Label) error {
	label.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": label.ID}, label)
	if err != nil {
		r.logger.Error("failed to update label",
			zap.String("label_id", label.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update label: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("label", label.ID, nil)
	}
	return nil
}

func (r *labelRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete label",
			zap.String("label_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete label: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("label", id, nil)
	}
	return nil
}

func (r *labelRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"board_id": boardID}); err != nil {
		r.logger.Error("failed to delete board labels",
			zap.String("board_id", boardID),
			zap.Error(err))
		return fmt.Errorf("failed to delete board labels: %w", err)
	}
	return nil
}
