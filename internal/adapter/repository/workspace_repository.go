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
	"go.uber.org/zap"
)

type workspaceRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewWorkspaceRepository creates a MongoDB-backed workspace repository.
func NewWorkspaceRepository(db *mongo.Database, logger *zap.Logger) domainRepo.WorkspaceRepository {
	return &workspaceRepository{
		collection: db.Collection("workspaces"),
		logger:     logger,
	}
}

func (r *workspaceRepository) FindByID(ctx context.Context, id string) (*entity.Workspace, error) {
	var workspace entity.Workspace
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workspace)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("workspace", id, err)
		}
		r.logger.Error("failed to find workspace",
			zap.String("workspace_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}
	return &workspace, nil
}

func (r *workspaceRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Workspace, error) {
	if len(ids) == 0 {
		return []*entity.Workspace{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.logger.Error("failed to find workspaces",
			zap.Int("count", len(ids)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find workspaces: %w", err)
	}
	defer cursor.Close(ctx)

	workspaces := []*entity.Workspace{}
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to decode workspaces: %w", err)
	}
	return workspaces, nil
}

func (r *workspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	if _, err := r.collection.InsertOne(ctx, workspace); err != nil {
		r.logger.Error("failed to create workspace",
			zap.String("workspace_id", workspace.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}

func (r *workspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	workspace.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": workspace.ID}, workspace)
	if err != nil {
		r.logger.Error("failed to update workspace",
			zap.String("workspace_id", workspace.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("workspace", workspace.ID, nil)
	}
	return nil
}

func (r *workspaceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete workspace",
			zap.String("workspace_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("workspace", id, nil)
	}
	return nil
}
