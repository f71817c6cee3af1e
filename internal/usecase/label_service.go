package usecase

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

// LabelService manages board labels.
type LabelService struct {
	labels   domainRepo.LabelRepository
	boards   domainRepo.BoardRepository
	boardSvc *BoardService
	access   *AccessService
	activity *ActivityService
	ids      *utils.UniqueIDService
	logger   *zap.Logger
}

// NewLabelService creates a new label service.
func NewLabelService(
	labels domainRepo.LabelRepository,
	boards domainRepo.BoardRepository,
	boardSvc *BoardService,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	logger *zap.Logger,
) *LabelService {
	return &LabelService{
		labels:   labels,
		boards:   boards,
		boardSvc: boardSvc,
		access:   access,
		activity: activity,
		ids:      ids,
		logger:   logger,
	}
}

// ListByBoard returns a board's labels.
func (s *LabelService) ListByBoard(ctx context.Context, userID, boardID string) ([]*entity.Label, error) {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardView); err != nil {
		return nil, err
	}
	return s.labels.FindByBoard(ctx, boardID)
}

// Create adds a label to a board. An empty color gets a random one.
func (s *LabelService) Create(ctx context.Context, userID, boardID, name, color string) (*entity.Label, error) {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapLabelManage); err != nil {
		return nil, err
	}

	if color == "" {
		color, err = s.ids.GenerateRandomColor()
		if err != nil {
			return nil, err
		}
	}

	labelID, err := s.ids.GenerateID(utils.PrefixLabel)
	if err != nil {
		return nil, err
	}

	label, err := entity.NewLabel(labelID, boardID, name, color)
	if err != nil {
		return nil, err
	}

	if err := s.labels.Create(ctx, label); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, boardID)
	s.activity.Record(ctx, board.WorkspaceID, boardID, userID, entity.ActivityLabelCreated, "label", labelID,
		map[string]string{"name": name})

	return label, nil
}

// Update renames or recolors a label.
func (s *LabelService) Update(ctx context.Context, userID, labelID, name, color string) (*entity.Label, error) {
	label, err := s.labels.FindByID(ctx, labelID)
	if err != nil {
		return nil, err
	}
	board, err := s.boards.FindByID(ctx, label.BoardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapLabelManage); err != nil {
		return nil, err
	}

	if name != "" {
		label.Name = name
	}
	if color != "" {
		label.Color = color
	}

	if err := s.labels.Update(ctx, label); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, label.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, label.BoardID, userID, entity.ActivityLabelUpdated, "label", labelID, nil)

	return label, nil
}

// Delete removes a label.
func (s *LabelService) Delete(ctx context.Context, userID, labelID string) error {
	label, err := s.labels.FindByID(ctx, labelID)
	if err != nil {
		return err
	}
	board, err := s.boards.FindByID(ctx, label.BoardID)
	if err != nil {
		return err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapLabelManage); err != nil {
		return err
	}

	if err := s.labels.Delete(ctx, labelID); err != nil {
		return err
	}

	s.boardSvc.Invalidate(ctx, label.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, label.BoardID, userID, entity.ActivityLabelDeleted, "label", labelID, nil)

	return nil
}
