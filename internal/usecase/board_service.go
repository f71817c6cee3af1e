package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

// BoardSnapshot is the fully rendered board a client needs to draw the
// kanban view: the board, its lists in order, its cards in order and its
// labels.
type BoardSnapshot struct {
	Board  *entity.Board   `json:"board"`
	Lists  []*entity.List  `json:"lists"`
	Cards  []*entity.Card  `json:"cards"`
	Labels []*entity.Label `json:"labels"`
}

// BoardService manages boards and serves board snapshots through the
// cache. Any board-scoped write invalidates the snapshot.
type BoardService struct {
	boards      domainRepo.BoardRepository
	lists       domainRepo.ListRepository
	cards       domainRepo.CardRepository
	labels      domainRepo.LabelRepository
	comments    domainRepo.CommentRepository
	attachments domainRepo.AttachmentRepository
	files       domainRepo.FileRepository
	cache       domainRepo.CacheRepository
	access      *AccessService
	activity    *ActivityService
	ids         *utils.UniqueIDService
	ttl         time.Duration
	logger      *zap.Logger
}

// NewBoardService creates a new board service.
func NewBoardService(
	boards domainRepo.BoardRepository,
	lists domainRepo.ListRepository,
	cards domainRepo.CardRepository,
	labels domainRepo.LabelRepository,
	comments domainRepo.CommentRepository,
	attachments domainRepo.AttachmentRepository,
	files domainRepo.FileRepository,
	cache domainRepo.CacheRepository,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	snapshotTTL time.Duration,
	logger *zap.Logger,
) *BoardService {
	if snapshotTTL <= 0 {
		snapshotTTL = 5 * time.Minute
	}
	return &BoardService{
		boards:      boards,
		lists:       lists,
		cards:       cards,
		labels:      labels,
		comments:    comments,
		attachments: attachments,
		files:       files,
		cache:       cache,
		access:      access,
		activity:    activity,
		ids:         ids,
		ttl:         snapshotTTL,
		logger:      logger,
	}
}

// Create creates a board in the workspace.
func (s *BoardService) Create(ctx context.Context, userID, workspaceID, name, description, background string) (*entity.Board, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapBoardCreate); err != nil {
		return nil, err
	}

	boardID, err := s.ids.GenerateID(utils.PrefixBoard)
	if err != nil {
		return nil, err
	}

	if background == "" {
		if color, err := s.ids.GenerateRandomColor(); err == nil {
			background = color
		}
	}

	board, err := entity.NewBoard(boardID, workspaceID, name, description, background, userID)
	if err != nil {
		return nil, err
	}

	if err := s.boards.Create(ctx, board); err != nil {
		return nil, err
	}

	s.logger.Info("board created",
		zap.String("board_id", boardID),
		zap.String("workspace_id", workspaceID),
		zap.String("user_id", userID))

	s.activity.Record(ctx, workspaceID, boardID, userID, entity.ActivityBoardCreated, "board", boardID,
		map[string]string{"name": name})

	return board, nil
}

// ListByWorkspace returns the boards of a workspace.
func (s *BoardService) ListByWorkspace(ctx context.Context, userID, workspaceID string, includeArchived bool) ([]*entity.Board, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapBoardView); err != nil {
		return nil, err
	}
	return s.boards.FindByWorkspace(ctx, workspaceID, includeArchived)
}

// Get returns the board snapshot, served from cache when fresh.
func (s *BoardService) Get(ctx context.Context, userID, boardID string) (*BoardSnapshot, error) {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardView); err != nil {
		return nil, err
	}

	// Cache failures degrade to a rebuild, never to an error.
	if data, err := s.cache.GetBoardSnapshot(ctx, boardID); err == nil && data != nil {
		var snapshot BoardSnapshot
		if err := json.Unmarshal(data, &snapshot); err == nil {
			return &snapshot, nil
		}
		s.logger.Warn("discarding unreadable board snapshot", zap.String("board_id", boardID))
	}

	snapshot, err := s.buildSnapshot(ctx, board)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snapshot); err == nil {
		if err := s.cache.SetBoardSnapshot(ctx, boardID, data, s.ttl); err != nil {
			s.logger.Warn("failed to cache board snapshot",
				zap.String("board_id", boardID),
				zap.Error(err))
		}
	}

	return snapshot, nil
}

// Update applies a partial update to a board.
func (s *BoardService) Update(ctx context.Context, userID, boardID string, update entity.BoardUpdate) (*entity.Board, error) {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	capability := authz.CapBoardUpdate
	action := entity.ActivityBoardUpdated
	if update.Archived != nil && *update.Archived != board.Archived {
		capability = authz.CapBoardArchive
		action = entity.ActivityBoardArchived
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, capability); err != nil {
		return nil, err
	}

	if update.Name != nil {
		board.Name = *update.Name
	}
	if update.Description != nil {
		board.Description = *update.Description
	}
	if update.Background != nil {
		board.Background = *update.Background
	}
	if update.Archived != nil {
		board.Archived = *update.Archived
	}

	if err := s.boards.Update(ctx, board); err != nil {
		return nil, err
	}

	s.Invalidate(ctx, boardID)
	s.activity.Record(ctx, board.WorkspaceID, boardID, userID, action, "board", boardID, nil)

	return board, nil
}

// Delete removes a board with its lists, cards, labels, comments,
// attachments and cached snapshot.
func (s *BoardService) Delete(ctx context.Context, userID, boardID string) error {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardDelete); err != nil {
		return err
	}

	cards, err := s.cards.FindByBoard(ctx, boardID, true)
	if err != nil {
		return err
	}
	cardIDs := make([]string, 0, len(cards))
	for _, card := range cards {
		cardIDs = append(cardIDs, card.ID)
	}

	orphaned, err := s.attachments.FindByCards(ctx, cardIDs)
	if err != nil {
		return err
	}

	if err := s.comments.DeleteByCards(ctx, cardIDs); err != nil {
		return err
	}
	if err := s.attachments.DeleteByCards(ctx, cardIDs); err != nil {
		return err
	}
	if err := s.labels.DeleteByBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.cards.DeleteByBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.lists.DeleteByBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.boards.Delete(ctx, boardID); err != nil {
		return err
	}

	s.Invalidate(ctx, boardID)
	reapAttachmentObjects(ctx, s.files, s.logger, orphaned)

	s.logger.Info("board deleted",
		zap.String("board_id", boardID),
		zap.String("workspace_id", board.WorkspaceID),
		zap.String("user_id", userID))

	s.activity.Record(ctx, board.WorkspaceID, boardID, userID, entity.ActivityBoardDeleted, "board", boardID,
		map[string]string{"name": board.Name})

	return nil
}

// Invalidate drops the cached snapshot of a board. Called by every service
// that writes board-scoped data.
func (s *BoardService) Invalidate(ctx context.Context, boardID string) {
	if err := s.cache.InvalidateBoard(ctx, boardID); err != nil {
		s.logger.Warn("failed to invalidate board snapshot",
			zap.String("board_id", boardID),
			zap.Error(err))
	}
}

func (s *BoardService) buildSnapshot(ctx context.Context, board *entity.Board) (*BoardSnapshot, error) {
	lists, err := s.lists.FindByBoard(ctx, board.ID, false)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.FindByBoard(ctx, board.ID, false)
	if err != nil {
		return nil, err
	}
	labels, err := s.labels.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	return &BoardSnapshot{
		Board:  board,
		Lists:  lists,
		Cards:  cards,
		Labels: labels,
	}, nil
}
