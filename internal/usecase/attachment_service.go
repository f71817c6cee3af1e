package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

const downloadURLExpiry = 15 * time.Minute

// AttachmentService manages card attachments: metadata in the document
// store, bytes in object storage.
type AttachmentService struct {
	attachments domainRepo.AttachmentRepository
	files       domainRepo.FileRepository
	cards       domainRepo.CardRepository
	boards      domainRepo.BoardRepository
	access      *AccessService
	activity    *ActivityService
	ids         *utils.UniqueIDService
	logger      *zap.Logger
}

// NewAttachmentService creates a new attachment service.
func NewAttachmentService(
	attachments domainRepo.AttachmentRepository,
	files domainRepo.FileRepository,
	cards domainRepo.CardRepository,
	boards domainRepo.BoardRepository,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	logger *zap.Logger,
) *AttachmentService {
	return &AttachmentService{
		attachments: attachments,
		files:       files,
		cards:       cards,
		boards:      boards,
		access:      access,
		activity:    activity,
		ids:         ids,
		logger:      logger,
	}
}

// ListByCard returns a card's attachments.
func (s *AttachmentService) ListByCard(ctx context.Context, userID, cardID string) ([]*entity.Attachment, error) {
	board, err := s.boardOfCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardView); err != nil {
		return nil, err
	}
	return s.attachments.FindByCard(ctx, cardID)
}

// Upload stores the file in object storage and records its metadata.
func (s *AttachmentService) Upload(ctx context.Context, userID, cardID, fileName, contentType string, body io.Reader, size int64) (*entity.Attachment, error) {
	board, err := s.boardOfCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapAttachmentCreate); err != nil {
		return nil, err
	}

	attachmentID, err := s.ids.GenerateID(utils.PrefixAttachment)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("attachments/%s/%s/%s/%s", board.ID, cardID, attachmentID, fileName)

	if err := s.files.Upload(ctx, objectKey, contentType, body, size); err != nil {
		return nil, domainErrors.NewStorageError("attachment", attachmentID, err)
	}

	attachment, err := entity.NewAttachment(attachmentID, cardID, fileName, contentType, objectKey, userID, size)
	if err != nil {
		return nil, err
	}

	if err := s.attachments.Create(ctx, attachment); err != nil {
		// Orphaned object; reap it rather than leak it.
		if cleanupErr := s.files.Delete(ctx, objectKey); cleanupErr != nil {
			s.logger.Warn("failed to remove orphaned attachment object",
				zap.String("object_key", objectKey),
				zap.Error(cleanupErr))
		}
		return nil, err
	}

	s.activity.Record(ctx, board.WorkspaceID, board.ID, userID, entity.ActivityAttachmentAdded, "attachment", attachmentID,
		map[string]string{"card_id": cardID, "file_name": fileName})

	return attachment, nil
}

// DownloadURL returns a short-lived URL for fetching the attachment.
func (s *AttachmentService) DownloadURL(ctx context.Context, userID, attachmentID string) (string, error) {
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return "", err
	}

	board, err := s.boardOfCard(ctx, attachment.CardID)
	if err != nil {
		return "", err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardView); err != nil {
		return "", err
	}

	url, err := s.files.PresignDownload(ctx, attachment.ObjectKey, downloadURLExpiry)
	if err != nil {
		return "", domainErrors.NewStorageError("attachment", attachmentID, err)
	}
	return url, nil
}

// Delete removes an attachment. The uploader may delete their own;
// anyone else needs the delete capability.
func (s *AttachmentService) Delete(ctx context.Context, userID, attachmentID string) error {
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return err
	}

	board, err := s.boardOfCard(ctx, attachment.CardID)
	if err != nil {
		return err
	}

	if attachment.UploadedBy != userID {
		if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapAttachmentDelete); err != nil {
			return err
		}
	} else if _, err := s.access.ResolveRole(ctx, userID, board.WorkspaceID); err != nil {
		return err
	}

	if err := s.attachments.Delete(ctx, attachmentID); err != nil {
		return err
	}

	if err := s.files.Delete(ctx, attachment.ObjectKey); err != nil {
		s.logger.Warn("failed to delete attachment object",
			zap.String("object_key", attachment.ObjectKey),
			zap.Error(err))
	}

	s.activity.Record(ctx, board.WorkspaceID, board.ID, userID, entity.ActivityAttachmentRemoved, "attachment", attachmentID,
		map[string]string{"card_id": attachment.CardID})

	return nil
}

// reapAttachmentObjects removes the stored objects of already-deleted
// attachment records. Object storage failures are logged, not propagated:
// the metadata is gone and the request must not fail over a leaked object.
func reapAttachmentObjects(ctx context.Context, files domainRepo.FileRepository, logger *zap.Logger, attachments []*entity.Attachment) {
	for _, attachment := range attachments {
		if err := files.Delete(ctx, attachment.ObjectKey); err != nil {
			logger.Warn("failed to delete attachment object",
				zap.String("object_key", attachment.ObjectKey),
				zap.Error(err))
		}
	}
}

func (s *AttachmentService) boardOfCard(ctx context.Context, cardID string) (*entity.Board, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return s.boards.FindByID(ctx, card.BoardID)
}
