package usecase

import (
	"context"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"go.uber.org/zap"
)

// AccessService resolves a caller's workspace role and gates operations on
// the authz evaluator. It is the only place a handler-facing service reads
// membership for authorization; the evaluator itself never touches storage.
type AccessService struct {
	members   domainRepo.MemberRepository
	evaluator *authz.Evaluator
	logger    *zap.Logger
}

// NewAccessService creates a new access service.
func NewAccessService(
	members domainRepo.MemberRepository,
	evaluator *authz.Evaluator,
	logger *zap.Logger,
) *AccessService {
	return &AccessService{
		members:   members,
		evaluator: evaluator,
		logger:    logger,
	}
}

// ResolveRole returns the caller's role in the workspace. A missing or
// non-active membership resolves to a not-member error, never to a role.
func (s *AccessService) ResolveRole(ctx context.Context, userID, workspaceID string) (authz.Role, error) {
	if userID == "" || workspaceID == "" {
		return "", domainErrors.NewUserNotMemberError(userID, workspaceID)
	}

	member, err := s.members.FindByUserAndWorkspace(ctx, userID, workspaceID)
	if err != nil {
		s.logger.Debug("membership lookup failed",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return "", err
	}

	if member.Status != entity.MemberStatusActive {
		return "", domainErrors.NewUserNotMemberError(userID, workspaceID)
	}

	role, ok := authz.ParseRole(member.Role)
	if !ok {
		// A corrupted role value denies rather than erroring open.
		s.logger.Warn("member has unrecognized role",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.String("role", member.Role))
		return "", domainErrors.NewInsufficientPermissionsError(userID, workspaceID)
	}

	return role, nil
}

// RequireCapability resolves the caller's role and checks it grants the
// capability. On denial it returns an insufficient-permissions error.
func (s *AccessService) RequireCapability(ctx context.Context, userID, workspaceID string, capability authz.Capability) (authz.Role, error) {
	role, err := s.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return "", err
	}

	if !s.evaluator.HasPermission(role, capability) {
		s.logger.Info("capability denied",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.String("role", string(role)),
			zap.String("capability", string(capability)))
		return "", domainErrors.NewInsufficientPermissionsError(userID, workspaceID)
	}

	return role, nil
}

// RequireRole resolves the caller's role and checks it ranks at or above
// the required role.
func (s *AccessService) RequireRole(ctx context.Context, userID, workspaceID string, required authz.Role) (authz.Role, error) {
	role, err := s.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return "", err
	}

	if !s.evaluator.IsRoleAtLeast(role, required) {
		s.logger.Info("minimum role denied",
			zap.String("user_id", userID),
			zap.String("workspace_id", workspaceID),
			zap.String("role", string(role)),
			zap.String("required", string(required)))
		return "", domainErrors.NewInsufficientPermissionsError(userID, workspaceID)
	}

	return role, nil
}

// Evaluator exposes the underlying evaluator for checks that need the raw
// predicates, such as role modification.
func (s *AccessService) Evaluator() *authz.Evaluator {
	return s.evaluator
}
