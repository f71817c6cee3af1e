package usecase

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

// WorkspaceService manages workspace lifecycle. Creating a workspace also
// creates its owner membership; deleting one cascades to boards, lists,
// cards, labels, comments, attachments, memberships and the feed.
type WorkspaceService struct {
	workspaces  domainRepo.WorkspaceRepository
	members     domainRepo.MemberRepository
	boards      domainRepo.BoardRepository
	lists       domainRepo.ListRepository
	cards       domainRepo.CardRepository
	labels      domainRepo.LabelRepository
	comments    domainRepo.CommentRepository
	attachments domainRepo.AttachmentRepository
	files       domainRepo.FileRepository
	access      *AccessService
	activity    *ActivityService
	ids         *utils.UniqueIDService
	logger      *zap.Logger
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(
	workspaces domainRepo.WorkspaceRepository,
	members domainRepo.MemberRepository,
	boards domainRepo.BoardRepository,
	lists domainRepo.ListRepository,
	cards domainRepo.CardRepository,
	labels domainRepo.LabelRepository,
	comments domainRepo.CommentRepository,
	attachments domainRepo.AttachmentRepository,
	files domainRepo.FileRepository,
	access *AccessService,
	activity *ActivityService,
	ids *utils.UniqueIDService,
	logger *zap.Logger,
) *WorkspaceService {
	return &WorkspaceService{
		workspaces:  workspaces,
		members:     members,
		boards:      boards,
		lists:       lists,
		cards:       cards,
		labels:      labels,
		comments:    comments,
		attachments: attachments,
		files:       files,
		access:      access,
		activity:    activity,
		ids:         ids,
		logger:      logger,
	}
}

// Create creates a workspace and makes the creator its owner.
func (s *WorkspaceService) Create(ctx context.Context, userID, email, name, description string) (*entity.Workspace, error) {
	workspaceID, err := s.ids.GenerateID(utils.PrefixWorkspace)
	if err != nil {
		return nil, err
	}

	workspace, err := entity.NewWorkspace(workspaceID, name, description, userID)
	if err != nil {
		return nil, err
	}

	if err := s.workspaces.Create(ctx, workspace); err != nil {
		return nil, err
	}

	memberID, err := s.ids.GenerateID(utils.PrefixMember)
	if err != nil {
		return nil, err
	}

	owner, err := entity.NewMember(memberID, workspaceID, userID, email, string(authz.RoleOwner), entity.MemberStatusActive, "")
	if err != nil {
		return nil, err
	}

	if err := s.members.Create(ctx, owner); err != nil {
		return nil, err
	}

	s.logger.Info("workspace created",
		zap.String("workspace_id", workspaceID),
		zap.String("user_id", userID))

	s.activity.Record(ctx, workspaceID, "", userID, entity.ActivityWorkspaceCreated, "workspace", workspaceID, map[string]string{"name": name})

	return workspace, nil
}

// Get returns a workspace the caller can view.
func (s *WorkspaceService) Get(ctx context.Context, userID, workspaceID string) (*entity.Workspace, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapWorkspaceView); err != nil {
		return nil, err
	}
	return s.workspaces.FindByID(ctx, workspaceID)
}

// ListMine returns the workspaces the caller belongs to.
func (s *WorkspaceService) ListMine(ctx context.Context, userID string) ([]*entity.Workspace, error) {
	ids, err := s.members.FindWorkspaceIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.Workspace{}, nil
	}
	return s.workspaces.FindByIDs(ctx, ids)
}

// Update applies a partial update to a workspace.
func (s *WorkspaceService) Update(ctx context.Context, userID, workspaceID string, update entity.WorkspaceUpdate) (*entity.Workspace, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapWorkspaceUpdate); err != nil {
		return nil, err
	}

	workspace, err := s.workspaces.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		workspace.Name = *update.Name
	}
	if update.Description != nil {
		workspace.Description = *update.Description
	}

	if err := s.workspaces.Update(ctx, workspace); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, workspaceID, "", userID, entity.ActivityWorkspaceUpdated, "workspace", workspaceID, nil)

	return workspace, nil
}

// Delete removes a workspace and everything in it.
func (s *WorkspaceService) Delete(ctx context.Context, userID, workspaceID string) error {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapWorkspaceDelete); err != nil {
		return err
	}

	workspace, err := s.workspaces.FindByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	boards, err := s.boards.FindByWorkspace(ctx, workspaceID, true)
	if err != nil {
		return err
	}

	cardIDs := []string{}
	for _, board := range boards {
		cards, err := s.cards.FindByBoard(ctx, board.ID, true)
		if err != nil {
			return err
		}
		for _, card := range cards {
			cardIDs = append(cardIDs, card.ID)
		}
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

	for _, board := range boards {
		if err := s.labels.DeleteByBoard(ctx, board.ID); err != nil {
			return err
		}
		if err := s.cards.DeleteByBoard(ctx, board.ID); err != nil {
			return err
		}
		if err := s.lists.DeleteByBoard(ctx, board.ID); err != nil {
			return err
		}
	}

	if err := s.boards.DeleteByWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	if err := s.members.DeleteByWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	if err := s.workspaces.Delete(ctx, workspaceID); err != nil {
		return err
	}

	s.logger.Info("workspace deleted",
		zap.String("workspace_id", workspaceID),
		zap.String("user_id", userID))

	// The deletion entry reaches live feed subscribers before the stored
	// feed is purged with the rest of the workspace.
	s.activity.Record(ctx, workspaceID, "", userID, entity.ActivityWorkspaceDeleted, "workspace", workspaceID,
		map[string]string{"name": workspace.Name})
	s.activity.PurgeWorkspace(ctx, workspaceID)

	reapAttachmentObjects(ctx, s.files, s.logger, orphaned)

	return nil
}
