package usecase

import (
	"context"
	"testing"

	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestAccessService(members *MockMemberRepository) *AccessService {
	return NewAccessService(members, authz.NewDefaultEvaluator(), zap.NewNop())
}

func activeMember(userID, workspaceID, role string) *entity.Member {
	return &entity.Member{
		ID:          "m01TESTMEMBER",
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		Status:      entity.MemberStatusActive,
	}
}

func TestAccessService_ResolveRole(t *testing.T) {
	tests := []struct {
		name         string
		userID       string
		workspaceID  string
		member       *entity.Member
		memberErr    error
		expectedRole authz.Role
		expectedType string
	}{
		{
			name:         "active admin resolves to admin",
			userID:       "user-1",
			workspaceID:  "w01AAAA",
			member:       activeMember("user-1", "w01AAAA", "admin"),
			expectedRole: authz.RoleAdmin,
		},
		{
			name:         "empty user id resolves to not member",
			userID:       "",
			workspaceID:  "w01AAAA",
			expectedType: domainErrors.ErrTypeUserNotMember,
		},
		{
			name:         "empty workspace id resolves to not member",
			userID:       "user-1",
			workspaceID:  "",
			expectedType: domainErrors.ErrTypeUserNotMember,
		},
		{
			name:         "missing membership propagates repository error",
			userID:       "user-1",
			workspaceID:  "w01AAAA",
			memberErr:    domainErrors.NewUserNotMemberError("user-1", "w01AAAA"),
			expectedType: domainErrors.ErrTypeUserNotMember,
		},
		{
			name:        "invited membership resolves to not member",
			userID:      "user-1",
			workspaceID: "w01AAAA",
			member: &entity.Member{
				UserID:      "user-1",
				WorkspaceID: "w01AAAA",
				Role:        "member",
				Status:      entity.MemberStatusInvited,
			},
			expectedType: domainErrors.ErrTypeUserNotMember,
		},
		{
			name:         "corrupted role denies instead of erroring open",
			userID:       "user-1",
			workspaceID:  "w01AAAA",
			member:       activeMember("user-1", "w01AAAA", "superadmin"),
			expectedType: domainErrors.ErrTypeInsufficientPermissions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockMemberRepository)
			if tt.member != nil || tt.memberErr != nil {
				members.On("FindByUserAndWorkspace", mock.Anything, tt.userID, tt.workspaceID).
					Return(tt.member, tt.memberErr)
			}

			service := newTestAccessService(members)
			role, err := service.ResolveRole(context.Background(), tt.userID, tt.workspaceID)

			if tt.expectedType != "" {
				assert.Error(t, err)
				var wsErr *domainErrors.WorkspaceError
				assert.ErrorAs(t, err, &wsErr)
				assert.Equal(t, tt.expectedType, wsErr.Type)
				assert.Empty(t, role)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, role)
			}
			members.AssertExpectations(t)
		})
	}
}

func TestAccessService_RequireCapability(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		capability authz.Capability
		allowed    bool
	}{
		{name: "viewer may view boards", role: "viewer", capability: authz.CapBoardView, allowed: true},
		{name: "viewer may not create cards", role: "viewer", capability: authz.CapCardCreate, allowed: false},
		{name: "member may create cards", role: "member", capability: authz.CapCardCreate, allowed: true},
		{name: "member may not invite", role: "member", capability: authz.CapMemberInvite, allowed: false},
		{name: "admin may invite", role: "admin", capability: authz.CapMemberInvite, allowed: true},
		{name: "admin may not delete workspace", role: "admin", capability: authz.CapWorkspaceDelete, allowed: false},
		{name: "owner may delete workspace", role: "owner", capability: authz.CapWorkspaceDelete, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockMemberRepository)
			members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
				Return(activeMember("user-1", "w01AAAA", tt.role), nil)

			service := newTestAccessService(members)
			role, err := service.RequireCapability(context.Background(), "user-1", "w01AAAA", tt.capability)

			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, authz.Role(tt.role), role)
			} else {
				var wsErr *domainErrors.WorkspaceError
				assert.ErrorAs(t, err, &wsErr)
				assert.Equal(t, domainErrors.ErrTypeInsufficientPermissions, wsErr.Type)
			}
		})
	}
}

func TestAccessService_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required authz.Role
		allowed  bool
	}{
		{name: "owner passes admin floor", role: "owner", required: authz.RoleAdmin, allowed: true},
		{name: "admin passes admin floor", role: "admin", required: authz.RoleAdmin, allowed: true},
		{name: "member fails admin floor", role: "member", required: authz.RoleAdmin, allowed: false},
		{name: "viewer passes viewer floor", role: "viewer", required: authz.RoleViewer, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockMemberRepository)
			members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
				Return(activeMember("user-1", "w01AAAA", tt.role), nil)

			service := newTestAccessService(members)
			_, err := service.RequireRole(context.Background(), "user-1", "w01AAAA", tt.required)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				var wsErr *domainErrors.WorkspaceError
				assert.ErrorAs(t, err, &wsErr)
				assert.Equal(t, domainErrors.ErrTypeInsufficientPermissions, wsErr.Type)
			}
		})
	}
}
