package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type activityRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewActivityRepository creates a MongoDB-backed activity feed repository.
func NewActivityRepository(db *mongo.Database, logger *zap.Logger) domainRepo.ActivityRepository {
	return &activityRepository{
		collection: db.Collection("activities"),
		logger:     logger,
	}
}

func (r *activityRepository) Append(ctx context.Context, activity *entity.Activity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, activity); err != nil {
		r.logger.Error("failed to append activity",
			zap.String("workspace_id", activity.WorkspaceID),
			zap.String("action", activity.Action),
			zap.Error(err))
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

func (r *activityRepository) FindByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]*entity.Activity, error) {
	return r.find(ctx, bson.M{"workspace_id": workspaceID}, limit, offset)
}

func (r *activityRepository) FindByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entity.Activity, error) {
	return r.find(ctx, bson.M{"board_id": boardID}, limit, offset)
}

func (r *activityRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"workspace_id": workspaceID}); err != nil {
		r.logger.Error("failed to delete workspace activity",
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return fmt.Errorf("failed to delete workspace activity: %w", err)
	}
	return nil
}

func (r *activityRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to find activities", zap.Error(err))
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := []*entity.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}
