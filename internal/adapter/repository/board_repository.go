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

type boardRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewBoardRepository creates a MongoDB-backed board repository.
func NewBoardRepository(db *mongo.Database, logger *zap.Logger) domainRepo.BoardRepository {
	return &boardRepository{
		collection: db.Collection("boards"),
		logger:     logger,
	}
}

func (r *boardRepository) FindByID(ctx context.Context, id string) (*entity.Board, error) {
	var board entity.Board
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("board", id, err)
		}
		r.logger.Error("failed to find board",
			zap.String("board_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return &board, nil
}

func (r *boardRepository) FindByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*entity.Board, error) {
	filter := bson.M{"workspace_id": workspaceID}
	if !includeArchived {
		filter["archived"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "archived", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("failed to find workspace boards",
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find workspace boards: %w", err)
	}
	defer cursor.Close(ctx)

	boards := []*entity.Board{}
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}
	return boards, nil
}

func (r *boardRepository) Create(ctx context.Context, board *entity.Board) error {
	if _, err := r.collection.InsertOne(ctx, board); err != nil {
		r.logger.Error("failed to create board",
			zap.String("board_id", board.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create board: %w", err)
	}
	return nil
}

func (r *boardRepository) Update(ctx context.Context, board *entity.Board) error {
	board.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": board.ID}, board)
	if err != nil {
		r.logger.Error("failed to update board",
			zap.String("board_id", board.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update board: %w", err)
	}
	if result.MatchedCount == 0 {
		return domainErrors.NewNotFoundError("board", board.ID, nil)
	}
	return nil
}

func (r *boardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete board",
			zap.String("board_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete board: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("board", id, nil)
	}
	return nil
}

func (r *boardRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"workspace_id": workspaceID}); err != nil {
		r.logger.Error("failed to delete workspace boards",
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return fmt.Errorf("failed to delete workspace boards: %w", err)
	}
	return nil
}
