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

type commentRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewCommentRepository creates a MongoDB-backed comment repository.
func NewCommentRepository(db *mongo.Database, logger *zap.Logger) domainRepo.CommentRepository {
	return &commentRepository{
		collection: db.Collection("comments"),
		logger:     logger,
	}
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("comment", id, err)
		}
		r.logger.Error("failed to find comment",
			zap.String("comment_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return &comment, nil
}

func (r *commentRepository) FindByCard(ctx context.Context, cardID string, limit, offset int) ([]*entity.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, bson.M{"card_id": cardID}, opts)
	if err != nil {
		r.logger.Error("failed to find card comments",
			zap.String("card_id", cardID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find card comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []*entity.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		r.logger.Error("failed to create comment",
			zap.String("comment_id", comment.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	comment.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": comment.ID}, comment)
	if err != nil {
		r.logger.Error("failed to update comment",
			zap.String("comment_id", comment.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("comment", comment.ID, nil)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete comment",
			zap.String("comment_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("comment", id, nil)
	}
	return nil
}

func (r *commentRepository) DeleteByCards(ctx context.Context, cardIDs []string) error {
	if len(cardIDs) == 0 {
		return nil
	}
	if _, err := r.collection.DeleteMany(ctx, bson.M{"card_id": bson.M{"$in": cardIDs}}); err != nil {
		r.logger.Error("failed to delete card comments",
			zap.Int("card_count", len(cardIDs)),
			zap.Error(err))
		return fmt.Errorf("failed to delete card comments: %w", err)
	}
	return nil
}
