package usecase

import (
	"context"
	"fmt"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"go.uber.org/zap"
)

// InvitationMailer sends workspace invitation mail. Satisfied by
// utils.EmailService; mocked in tests.
type InvitationMailer interface {
	SendEmail(from, to, subject, htmlBody string) error
	GenerateInvitationEmailHTML(workspaceName, inviterName, role, joinURL string) string
}

// MemberService manages workspace memberships: listing, invitations, role
// changes and removal. All role decisions go through the authz evaluator.
type MemberService struct {
	members    domainRepo.MemberRepository
	workspaces domainRepo.WorkspaceRepository
	access     *AccessService
	activity   *ActivityService
	mailer     InvitationMailer
	ids        *utils.UniqueIDService
	fromEmail  string
	clientURL  string
	logger     *zap.Logger
}

// NewMemberService creates a new member service. mailer may be nil, in
// which case invitations are stored but no mail goes out.
func NewMemberService(
	members domainRepo.MemberRepository,
	workspaces domainRepo.WorkspaceRepository,
	access *AccessService,
	activity *ActivityService,
	mailer InvitationMailer,
	ids *utils.UniqueIDService,
	fromEmail string,
	clientURL string,
	logger *zap.Logger,
) *MemberService {
	return &MemberService{
		members:    members,
		workspaces: workspaces,
		access:     access,
		activity:   activity,
		mailer:     mailer,
		ids:        ids,
		fromEmail:  fromEmail,
		clientURL:  clientURL,
		logger:     logger,
	}
}

// List returns the memberships of a workspace.
func (s *MemberService) List(ctx context.Context, userID, workspaceID string) ([]*entity.Member, error) {
	if _, err := s.access.RequireCapability(ctx, userID, workspaceID, authz.CapMemberView); err != nil {
		return nil, err
	}
	return s.members.FindByWorkspace(ctx, workspaceID)
}

// Invite adds a user to the workspace in invited status and mails them.
// The granted role must be one the actor could set through a role change:
// never owner, and below admin when the actor is an admin.
func (s *MemberService) Invite(ctx context.Context, actorID, workspaceID, inviteeUserID, inviteeEmail, roleName string) (*entity.Member, error) {
	actorRole, err := s.access.RequireCapability(ctx, actorID, workspaceID, authz.CapMemberInvite)
	if err != nil {
		return nil, err
	}

	role, ok := authz.ParseRole(roleName)
	if !ok || role == authz.RoleOwner {
		return nil, domainErrors.NewRoleChangeDeniedError(actorID, workspaceID)
	}
	// The lowest assignable current role stands in for the invitee, who
	// has no role yet: an actor who may not lift a viewer to the invited
	// role may not invite at that role either.
	if !s.access.Evaluator().CanModifyRole(actorRole, authz.RoleViewer, role) {
		return nil, domainErrors.NewRoleChangeDeniedError(actorID, workspaceID)
	}

	if existing, err := s.members.FindByUserAndWorkspace(ctx, inviteeUserID, workspaceID); err == nil && existing != nil {
		return nil, domainErrors.NewMemberAlreadyExistsError(inviteeUserID, workspaceID)
	}

	memberID, err := s.ids.GenerateID(utils.PrefixMember)
	if err != nil {
		return nil, err
	}

	member, err := entity.NewMember(memberID, workspaceID, inviteeUserID, inviteeEmail, string(role), entity.MemberStatusInvited, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	s.sendInvitationMail(ctx, workspaceID, actorID, inviteeEmail, role)

	s.activity.Record(ctx, workspaceID, "", actorID, entity.ActivityMemberInvited, "member", memberID,
		map[string]string{"user_id": inviteeUserID, "role": string(role)})

	return member, nil
}

// AcceptInvite flips an invited membership to active.
func (s *MemberService) AcceptInvite(ctx context.Context, userID, workspaceID string) error {
	member, err := s.members.FindByUserAndWorkspace(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if member.Status != entity.MemberStatusInvited {
		return domainErrors.NewConflictError("member", member.ID, fmt.Errorf("membership status is %s", member.Status))
	}
	return s.members.UpdateStatus(ctx, workspaceID, userID, entity.MemberStatusActive)
}

// ChangeRole sets a member's role after the evaluator authorises the
// transition. A no-op change is authorised but skips the write.
func (s *MemberService) ChangeRole(ctx context.Context, actorID, workspaceID, targetUserID, newRoleName string) (*entity.Member, error) {
	actorRole, err := s.access.RequireCapability(ctx, actorID, workspaceID, authz.CapMemberModifyRole)
	if err != nil {
		return nil, err
	}

	target, err := s.members.FindByUserAndWorkspace(ctx, targetUserID, workspaceID)
	if err != nil {
		return nil, err
	}

	targetRole, _ := authz.ParseRole(target.Role)
	newRole, _ := authz.ParseRole(newRoleName)

	// Unparsed roles come out zero-valued and fail the check below.
	if !s.access.Evaluator().CanModifyRole(actorRole, targetRole, newRole) {
		s.logger.Info("role change denied",
			zap.String("workspace_id", workspaceID),
			zap.String("actor_id", actorID),
			zap.String("actor_role", string(actorRole)),
			zap.String("target_user_id", targetUserID),
			zap.String("target_role", string(targetRole)),
			zap.String("new_role", newRoleName))
		return nil, domainErrors.NewRoleChangeDeniedError(actorID, workspaceID)
	}

	if newRole == targetRole {
		// Authorised no-op; nothing to write.
		return target, nil
	}

	if err := s.members.UpdateRole(ctx, workspaceID, targetUserID, string(newRole)); err != nil {
		return nil, err
	}
	target.Role = string(newRole)

	s.activity.Record(ctx, workspaceID, "", actorID, entity.ActivityMemberRoleSet, "member", target.ID,
		map[string]string{"user_id": targetUserID, "from": string(targetRole), "to": string(newRole)})

	return target, nil
}

// Remove deletes a membership. Members may always leave on their own,
// except the owner; removing someone else requires the remove capability
// and a target ranked strictly below the actor.
func (s *MemberService) Remove(ctx context.Context, actorID, workspaceID, targetUserID string) error {
	target, err := s.members.FindByUserAndWorkspace(ctx, targetUserID, workspaceID)
	if err != nil {
		return err
	}

	targetRole, _ := authz.ParseRole(target.Role)
	if targetRole == authz.RoleOwner {
		return domainErrors.NewOwnerNotRemovableError(targetUserID, workspaceID)
	}

	if actorID != targetUserID {
		actorRole, err := s.access.RequireCapability(ctx, actorID, workspaceID, authz.CapMemberRemove)
		if err != nil {
			return err
		}
		if s.access.Evaluator().IsRoleAtLeast(targetRole, actorRole) {
			return domainErrors.NewInsufficientPermissionsError(actorID, workspaceID)
		}
	}

	if err := s.members.Delete(ctx, workspaceID, targetUserID); err != nil {
		return err
	}

	s.activity.Record(ctx, workspaceID, "", actorID, entity.ActivityMemberRemoved, "member", target.ID,
		map[string]string{"user_id": targetUserID})

	return nil
}

func (s *MemberService) sendInvitationMail(ctx context.Context, workspaceID, actorID, inviteeEmail string, role authz.Role) {
	if s.mailer == nil || inviteeEmail == "" {
		return
	}

	workspaceName := workspaceID
	if workspace, err := s.workspaces.FindByID(ctx, workspaceID); err == nil {
		workspaceName = workspace.Name
	}

	joinURL := fmt.Sprintf("%s/workspaces/%s/join", s.clientURL, workspaceID)
	body := s.mailer.GenerateInvitationEmailHTML(workspaceName, actorID, string(role), joinURL)
	subject := fmt.Sprintf("You have been invited to %s", workspaceName)

	// Mail failures must not fail the invitation itself.
	if err := s.mailer.SendEmail(s.fromEmail, inviteeEmail, subject, body); err != nil {
		s.logger.Warn("failed to send invitation email",
			zap.String("workspace_id", workspaceID),
			zap.String("invitee_email", inviteeEmail),
			zap.Error(err))
	}
}
