package usecase

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

// CommentService manages card comments. Authors may edit and delete their
// own comments; moderation covers everyone else's.
type CommentService struct {
	comments domainRepo.CommentRepository
	cards    domainRepo.CardRepository
	boards   domainRepo.BoardRepository
	access   *AccessService
	activity *ActivityService
	ids      *utils.UniqueIDService
	logger   *zap.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(
	comments domainRepo.CommentRepository,
	cards domainRepo.CardRepository,
	boards domainRepo.BoardRepository,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		cards:    cards,
		boards:   boards,
		access:   access,
		activity: activity,
		ids:      ids,
		logger:   logger,
	}
}

// ListByCard returns a card's comments, newest first.
func (s *CommentService) ListByCard(ctx context.Context, userID, cardID string, limit, offset int) ([]*entity.Comment, error) {
	board, err := s.boardOfCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardView); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.comments.FindByCard(ctx, cardID, limit, offset)
}

// Add writes a new comment on a card.
func (s *CommentService) Add(ctx context.Context, userID, cardID, body string) (*entity.Comment, error) {
	board, err := s.boardOfCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapCommentCreate); err != nil {
		return nil, err
	}

	commentID, err := s.ids.GenerateID(utils.PrefixComment)
	if err != nil {
		return nil, err
	}

	comment, err := entity.NewComment(commentID, cardID, userID, body)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, board.WorkspaceID, board.ID, userID, entity.ActivityCommentAdded, "comment", commentID,
		map[string]string{"card_id": cardID})

	return comment, nil
}

// Edit updates a comment's body. Only the author may edit.
func (s *CommentService) Edit(ctx context.Context, userID, commentID, body string) (*entity.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	board, err := s.boardOfCard(ctx, comment.CardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapCommentCreate); err != nil {
		return nil, err
	}

	if comment.AuthorID != userID {
		return nil, domainErrors.NewInsufficientPermissionsError(userID, board.WorkspaceID)
	}

	comment.Body = body
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Delete removes a comment. The author may always delete their own;
// deleting someone else's requires the moderation capability.
func (s *CommentService) Delete(ctx context.Context, userID, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	board, err := s.boardOfCard(ctx, comment.CardID)
	if err != nil {
		return err
	}

	if comment.AuthorID != userID {
		if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapCommentModerate); err != nil {
			return err
		}
	} else if _, err := s.access.ResolveRole(ctx, userID, board.WorkspaceID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.activity.Record(ctx, board.WorkspaceID, board.ID, userID, entity.ActivityCommentDeleted, "comment", commentID,
		map[string]string{"card_id": comment.CardID})

	return nil
}

func (s *CommentService) boardOfCard(ctx context.Context, cardID string) (*entity.Board, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return s.boards.FindByID(ctx, card.BoardID)
}
