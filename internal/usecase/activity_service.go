package usecase

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"github.com/itsmardochee/Planit-sub003/pkg/events"
	"go.uber.org/zap"
)

const defaultFeedLimit = 50

// ActivityService appends and serves the workspace activity feed. When a
// broker is configured, recorded entries are also broadcast over pub/sub.
type ActivityService struct {
	activities domainRepo.ActivityRepository
	access     *AccessService
	ids        *utils.UniqueIDService
	broker     events.Broker
	logger     *zap.Logger
}

// NewActivityService creates a new activity service. broker may be nil,
// in which case no events are broadcast.
func NewActivityService(
	activities domainRepo.ActivityRepository,
	access *AccessService,
	ids *utils.UniqueIDService,
	broker events.Broker,
	logger *zap.Logger,
) *ActivityService {
	return &ActivityService{
		activities: activities,
		access:     access,
		ids:        ids,
		broker:     broker,
		logger:     logger,
	}
}

// Record appends one feed entry. Recording is best-effort: a failure is
// logged and never propagated, so it cannot fail the mutation it trails.
func (s *ActivityService) Record(ctx context.Context, workspaceID, boardID, actorID, action, entityType, entityID string, detail map[string]string) {
	id, err := s.ids.GenerateID(utils.PrefixActivity)
	if err != nil {
		s.logger.Warn("failed to generate activity id", zap.Error(err))
		return
	}

	activity := &entity.Activity{
		ID:          id,
		WorkspaceID: workspaceID,
		BoardID:     boardID,
		ActorID:     actorID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Detail:      detail,
	}

	if err := s.activities.Append(ctx, activity); err != nil {
		s.logger.Warn("failed to append activity",
			zap.String("workspace_id", workspaceID),
			zap.String("action", action),
			zap.Error(err))
		return
	}

	if s.broker == nil {
		return
	}
	event := events.Event{
		WorkspaceID: workspaceID,
		BoardID:     boardID,
		ActorID:     actorID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Detail:      detail,
	}
	if err := s.broker.Publish(ctx, workspaceID, event); err != nil {
		s.logger.Warn("failed to publish activity event",
			zap.String("workspace_id", workspaceID),
			zap.String("action", action),
			zap.Error(err))
	}
}

// PurgeWorkspace drops the feed of a deleted workspace. Purging is
// best-effort like Record: a failure is logged, never propagated.
func (s *ActivityService) PurgeWorkspace(ctx context.Context, workspaceID string) {
	if err := s.activities.DeleteByWorkspace(ctx, workspaceID); err != nil {
		s.logger.Warn("failed to purge workspace activity",
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
	}
}

// WorkspaceFeed returns workspace activity, newest first.
func (s *ActivityService) WorkspaceFeed(ctx context.Context, userID, workspaceID string, limit, offset int) ([]*entity.Activity, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapActivityView); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.activities.FindByWorkspace(ctx, workspaceID, limit, offset)
}

// BoardFeed returns board activity, newest first.
func (s *ActivityService) BoardFeed(ctx context.Context, userID, workspaceID, boardID string, limit, offset int) ([]*entity.Activity, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapActivityView); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.activities.FindByBoard(ctx, boardID, limit, offset)
}
