package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type attachmentRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewAttachmentRepository creates a MongoDB-backed attachment metadata
// repository.
func NewAttachmentRepository(db *mongo.Database, logger *zap.Logger) domainRepo.AttachmentRepository {
	return &attachmentRepository{
		collection: db.Collection("attachments"),
		logger:     logger,
	}
}

func (r *attachmentRepository) FindByID(ctx context.Context, id string) (*entity.Attachment, error) {
	var attachment entity.Attachment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&attachment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.NewNotFoundError("attachment", id, err)
		}
		r.logger.Error("failed to find attachment",
			zap.String("attachment_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}
	return &attachment, nil
}

func (r *attachmentRepository) FindByCard(ctx context.Context, cardID string) ([]*entity.Attachment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"card_id": cardID}, opts)
	if err != nil {
		r.logger.Error("failed to find card attachments",
			zap.String("card_id", cardID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find card attachments: %w", err)
	}
	defer cursor.Close(ctx)

	attachments := []*entity.Attachment{}
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, fmt.Errorf("failed to decode attachments: %w", err)
	}
	return attachments, nil
}

func (r *attachmentRepository) FindByCards(ctx context.Context, cardIDs []string) ([]*entity.Attachment, error) {
	if len(cardIDs) == 0 {
		return []*entity.Attachment{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"card_id": bson.M{"$in": cardIDs}})
	if err != nil {
		r.logger.Error("failed to find attachments by cards",
			zap.Int("card_count", len(cardIDs)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find attachments by cards: %w", err)
	}
	defer cursor.Close(ctx)

	attachments := []*entity.Attachment{}
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, fmt.Errorf("failed to decode attachments: %w", err)
	}
	return attachments, nil
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *entity.Attachment) error {
	if _, err := r.collection.InsertOne(ctx, attachment); err != nil {
		r.logger.Error("failed to create attachment",
			zap.String("attachment_id", attachment.ID),
			zap.Error(err))
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return nil
}

func (r *attachmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete attachment",
			zap.String("attachment_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if result.DeletedCount == 0 {
		return domainErrors.NewNotFoundError("attachment", id, nil)
	}
	return nil
}

func (r *attachmentRepository) DeleteByCards(ctx context.Context, cardIDs []string) error {
	if len(cardIDs) == 0 {
		return nil
	}
	if _, err := r.collection.DeleteMany(ctx, bson.M{"card_id": bson.M{"$in": cardIDs}}); err != nil {
		r.logger.Error("failed to delete card attachments",
			zap.Int("card_count", len(cardIDs)),
			zap.Error(err))
		return fmt.Errorf("failed to delete card attachments: %w", err)
	}
	return nil
}
