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

// CardService manages cards, including drag-and-drop moves within and
// across lists.
type CardService struct {
	cards       domainRepo.CardRepository
	lists       domainRepo.ListRepository
	boards      domainRepo.BoardRepository
	comments    domainRepo.CommentRepository
	attachments domainRepo.AttachmentRepository
	files       domainRepo.FileRepository
	boardSvc    *BoardService
	access      *AccessService
	activity    *ActivityService
	ids         *utils.UniqueIDService
	logger      *zap.Logger
}

// NewCardService creates a new card service.
func NewCardService(
	cards domainRepo.CardRepository,
	lists domainRepo.ListRepository,
	boards domainRepo.BoardRepository,
	comments domainRepo.CommentRepository,
	attachments domainRepo.AttachmentRepository,
	files domainRepo.FileRepository,
	boardSvc *BoardService,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	logger *zap.Logger,
) *CardService {
	return &CardService{
		cards:       cards,
		lists:       lists,
		boards:      boards,
		comments:    comments,
		attachments: attachments,
		files:       files,
		boardSvc:    boardSvc,
		access:      access,
		activity:    activity,
		ids:         ids,
		logger:      logger,
	}
}

// Create appends a new card at the end of the list.
func (s *CardService) Create(ctx context.Context, userID, listID, title, description string) (*entity.Card, error) {
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	board, err := s.boards.FindByID(ctx, list.BoardID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapCardCreate); err != nil {
		return nil, err
	}

	existing, err := s.cards.FindByList(ctx, listID, false)
	if err != nil {
		return nil, err
	}
	var tail float64
	if len(existing) > 0 {
		tail = existing[len(existing)-1].Position
	}

	cardID, err := s.ids.GenerateID(utils.PrefixCard)
	if err != nil {
		return nil, err
	}

	card, err := entity.NewCard(cardID, listID, list.BoardID, title, description, userID, nextPosition(tail))
	if err != nil {
		return nil, err
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, list.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, list.BoardID, userID, entity.ActivityCardCreated, "card", cardID,
		map[string]string{"title": title})

	return card, nil
}

// Get returns a single card the caller can view.
func (s *CardService) Get(ctx context.Context, userID, cardID string) (*entity.Card, error) {
	card, board, err := s.cardWithBoard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapBoardView); err != nil {
		return nil, err
	}
	return card, nil
}

// Update applies a partial update to a card.
func (s *CardService) Update(ctx context.Context, userID, cardID string, update entity.CardUpdate) (*entity.Card, error) {
	card, board, err := s.cardWithBoard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	capability := authz.CapCardUpdate
	action := entity.ActivityCardUpdated
	if update.Archived != nil && *update.Archived != card.Archived {
		capability = authz.CapCardArchive
		action = entity.ActivityCardArchived
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, capability); err != nil {
		return nil, err
	}

	if update.Title != nil {
		card.Title = *update.Title
	}
	if update.Description != nil {
		card.Description = *update.Description
	}
	if update.DueDate != nil {
		card.DueDate = update.DueDate
	}
	if update.LabelIDs != nil {
		card.LabelIDs = *update.LabelIDs
	}
	if update.AssigneeIDs != nil {
		card.AssigneeIDs = *update.AssigneeIDs
	}
	if update.Archived != nil {
		card.Archived = *update.Archived
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}

	s.boardSvc.Invalidate(ctx, card.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, card.BoardID, userID, action, "card", cardID, nil)

	return card, nil
}

// Move drops a card at index in targetListID, which may be the card's own
// list or another list on the same board. Index counts the target list's
// cards with the moved card excluded.
func (s *CardService) Move(ctx context.Context, userID, cardID, targetListID string, index int) (*entity.Card, error) {
	card, board, err := s.cardWithBoard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapCardMove); err != nil {
		return nil, err
	}

	targetList, err := s.lists.FindByID(ctx, targetListID)
	if err != nil {
		return nil, err
	}
	if targetList.BoardID != card.BoardID {
		// Cross-board moves go through delete-and-recreate, not Move.
		return nil, domainErrors.NewConflictError("card", cardID, nil)
	}

	siblings, err := s.cards.FindByList(ctx, targetListID, false)
	if err != nil {
		return nil, err
	}

	others := make([]*entity.Card, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.ID != cardID {
			others = append(others, sibling)
		}
	}

	position, renorm := positionForIndex(cardPositions(others), index)
	if renorm {
		ids := make([]string, 0, len(others))
		for _, other := range others {
			ids = append(ids, other.ID)
		}
		fresh := renormalisePositions(ids)
		if err := s.cards.UpdatePositions(ctx, fresh); err != nil {
			return nil, err
		}
		for _, other := range others {
			other.Position = fresh[other.ID]
		}
		position, _ = positionForIndex(cardPositions(others), index)
	}

	if err := s.cards.Move(ctx, cardID, targetListID, position); err != nil {
		return nil, err
	}

	fromListID := card.ListID
	card.ListID = targetListID
	card.Position = position

	s.boardSvc.Invalidate(ctx, card.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, card.BoardID, userID, entity.ActivityCardMoved, "card", cardID,
		map[string]string{"from_list": fromListID, "to_list": targetListID})

	return card, nil
}

// Delete removes a card permanently, with its comments, attachment
// records and stored objects.
func (s *CardService) Delete(ctx context.Context, userID, cardID string) error {
	card, board, err := s.cardWithBoard(ctx, cardID)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireCapability(ctx, userID, board.WorkspaceID, authz.CapCardDelete); err != nil {
		return err
	}

	orphaned, err := s.attachments.FindByCards(ctx, []string{cardID})
	if err != nil {
		return err
	}

	if err := s.comments.DeleteByCards(ctx, []string{cardID}); err != nil {
		return err
	}
	if err := s.attachments.DeleteByCards(ctx, []string{cardID}); err != nil {
		return err
	}
	if err := s.cards.Delete(ctx, cardID); err != nil {
		return err
	}

	reapAttachmentObjects(ctx, s.files, s.logger, orphaned)

	s.boardSvc.Invalidate(ctx, card.BoardID)
	s.activity.Record(ctx, board.WorkspaceID, card.BoardID, userID, entity.ActivityCardDeleted, "card", cardID,
		map[string]string{"title": card.Title})

	return nil
}

func (s *CardService) cardWithBoard(ctx context.Context, cardID string) (*entity.Card, *entity.Board, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}
	board, err := s.boards.FindByID(ctx, card.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return card, board, nil
}

func cardPositions(cards []*entity.Card) []float64 {
	positions := make([]float64, 0, len(cards))
	for _, card := range cards {
		positions = append(positions, card.Position)
	}
	return positions
}
