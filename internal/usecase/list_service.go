package usecase

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

// ListService manages board lists, including drag-and-drop reordering by
// midpoint positions.
type ListService struct {
	lists    domainRepo.ListRepository
	boards   domainRepo.BoardRepository
	boardSvc *BoardService
	access   *AccessService
	activity *ActivityService
	ids      *utils.UniqueIDService
	logger   *zap.Logger
}

// NewListService creates a new list service.
func NewListService(
	lists domainRepo.ListRepository,
	boards domainRepo.BoardRepository,
	boardSvc *BoardService,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	logger *zap.Logger,
) *ListService {
	return &ListService{
		lists:    lists,
		boards:   boards,
		boardSvc: boardSvc,
		access:   access,
		activity: activity,
		ids:      ids,
		logger:   logger,
	}
}

// Create appends a new list at the end of the board.
func (s *ListService) Create(ctx context.Context, userID, boardID, name string) (*entity.List, error) {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapListCreate); err != nil {
		return nil, err
	}

	existing, err := s.lists.FindByBoard(ctx, boardID, false)
	if err != nil {
		return nil, err
	}
	var tail float64
	if len(existing) > 0 {
		tail = existing[len(existing)-1].Position
	}

	listID, err := s.ids.GenerateID(utils.PrefixList)
	if err != nil {
		return nil, err
	}

	list, err := entity.NewList(listID, boardID, name, nextPosition(tail))
	if err != nil {
		return nil, err
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, boardID)
	s.activity.Record(ctx, board.WorkspaceID, boardID, userID, entity.ActivityListCreated, "list", listID,
		map[string]string{"name": name})

	return list, nil
}

// Rename changes a list's name.
func (s *ListService) Rename(ctx context.Context, userID, listID, name string) (*entity.List, error) {
	list, board, err := s.listWithBoard(ctx, listID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapListUpdate); err != nil {
		return nil, err
	}

	list.Name = name
	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, list.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, list.BoardID, userID, entity.ActivityListUpdated, "list", listID, nil)

	return list, nil
}

// Archive hides a list from the board without deleting its cards.
func (s *ListService) Archive(ctx context.Context, userID, listID string, archived bool) (*entity.List, error) {
	list, board, err := s.listWithBoard(ctx, listID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapListArchive); err != nil {
		return nil, err
	}

	list.Archived = archived
	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, list.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, list.BoardID, userID, entity.ActivityListArchived, "list", listID, nil)

	return list, nil
}

// Move drops a list at index among the board's unarchived lists. Index
// counts positions in the board with the moved list excluded. When the
// midpoint between neighbours collapses the whole board is renormalised
// first, then the drop is recomputed.
func (s *ListService) Move(ctx context.Context, userID, listID string, index int) (*entity.List, error) {
	list, board, err := s.listWithBoard(ctx, listID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapListMove); err != nil {
		return nil, err
	}

	siblings, err := s.lists.FindByBoard(ctx, list.BoardID, false)
	if err != nil {
		return nil, err
	}

	others := make([]*entity.List, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.ID != listID {
			others = append(others, sibling)
		}
	}

	position, renorm := positionForIndex(listPositions(others), index)
	if renorm {
		ids := make([]string, 0, len(others))
		for _, other := range others {
			ids = append(ids, other.ID)
		}
		fresh := renormalisePositions(ids)
		if err := s.lists.UpdatePositions(ctx, fresh); err != nil {
			return nil, err
		}
		for _, other := range others {
			other.Position = fresh[other.ID]
		}
		position, _ = positionForIndex(listPositions(others), index)
	}

	if err := s.lists.UpdatePosition(ctx, listID, position); err != nil {
		return nil, err
	}
	list.Position = position

	s.boardSvc.Invalidate(ctx, list.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, list.BoardID, userID, entity.ActivityListMoved, "list", listID, nil)

	return list, nil
}

func (s *ListService) listWithBoard(ctx context.Context, listID string) (*entity.List, *entity.Board, error) {
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	board, err := s.boards.FindByID(ctx, list.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return list, board, nil
}

func listPositions(lists []*entity.List) []float64 {
	positions := make([]float64, 0, len(lists))
	for _, list := range lists {
		positions = append(positions, list.Position)
	}
	return positions
}
