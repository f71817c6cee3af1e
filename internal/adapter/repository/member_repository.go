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

type memberRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewMemberRepository creates a MongoDB-backed member repository. The
// members collection carries a unique index on (workspace_id, user_id).
func NewMemberRepository(db *mongo.Database, logger *zap.Logger) domainRepo.MemberRepository {
	return &memberRepository{
		collection: db.Collection("members"),
		logger:     logger,
	}
}

func (r *memberRepository) FindByUserAndWorkspace(ctx context.Context, userID, workspaceID string) (*entity.Member, error) {
	var member entity.Member
	filter := bson.M{"user_id": userID, "workspace_id": workspaceID}
	err := r.collection.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewMemberNotFoundError(userID, workspaceID)
		}
		r.logger.Error("failed to find member",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	return &member, nil
}

func (r *memberRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Member, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"workspace_id": workspaceID})
	if err != nil {
		r.logger.Error("failed to find workspace members",
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find workspace members: %w", err)
	}
	defer cursor.Close(ctx)

	members := []*entity.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w", err)
	}
	return members, nil
}

func (r *memberRepository) FindWorkspaceIDsByUser(ctx context.Context, userID string) ([]string, error) {
	filter := bson.M{"user_id": userID, "status": entity.MemberStatusActive}
	values, err := r.collection.Distinct(ctx, "workspace_id", filter)
	if err != nil {
		r.logger.Error("failed to list user workspaces",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list user workspaces: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	if _, err := r.collection.InsertOne(ctx, member); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainErrors.NewMemberAlreadyExistsError(member.UserID, member.WorkspaceID)
		}
		r.logger.Error("failed to create member",
			zap.String("user_id", member.UserID),
			zap.String("workspace_id", member.WorkspaceID),
			zap.Error(err))
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *memberRepository) UpdateRole(ctx context.Context, workspaceID, userID, role string) error {
	return r.updateField(ctx, workspaceID, userID, "role", role)
}

func (r *memberRepository) UpdateStatus(ctx context.Context, workspaceID, userID, status string) error {
	return r.updateField(ctx, workspaceID, userID, "status", status)
}

func (r *memberRepository) updateField(ctx context.Context, workspaceID, userID, field, value string) error {
	filter := bson.M{"workspace_id": workspaceID, "user_id": userID}
	update := bson.M{"$set": bson.M{field: value, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logger.Error("failed to update member",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.String("field", field),
			zap.Error(err))
		return fmt.Errorf("failed to update member: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewMemberNotFoundError(userID, workspaceID)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, workspaceID, userID string) error {
	filter := bson.M{"workspace_id": workspaceID, "user_id": userID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.Error("failed to delete member",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewMemberNotFoundError(userID, workspaceID)
	}
	return nil
}

func (r *memberRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"workspace_id": workspaceID}); err != nil {
		r.logger.Error("failed to delete workspace members",
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return fmt.Errorf("failed to delete workspace members: %w", err)
	}
	return nil
}
