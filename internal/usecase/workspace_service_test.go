package usecase

import (
	"context"
	"testing"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type workspaceServiceMocks struct {
	workspaces  *MockWorkspaceRepository
	members     *MockMemberRepository
	boards      *MockBoardRepository
	lists       *MockListRepository
	cards       *MockCardRepository
	labels      *MockLabelRepository
	comments    *MockCommentRepository
	attachments *MockAttachmentRepository
	files       *MockFileRepository
	activities  *MockActivityRepository
}

func newTestWorkspaceService(t *testing.T) (*WorkspaceService, *workspaceServiceMocks) {
	t.Helper()

	mocks := &workspaceServiceMocks{
		workspaces:  new(MockWorkspaceRepository),
		members:     new(MockMemberRepository),
		boards:      new(MockBoardRepository),
		lists:       new(MockListRepository),
		cards:       new(MockCardRepository),
		labels:      new(MockLabelRepository),
		comments:    new(MockCommentRepository),
		attachments: new(MockAttachmentRepository),
		files:       new(MockFileRepository),
		activities:  new(MockActivityRepository),
	}

	ids := utils.NewUniqueIDService()
	logger := zap.NewNop()
	access := newTestAccessService(mocks.members)
	activity := NewActivityService(mocks.activities, access, ids, nil, logger)
	service := NewWorkspaceService(
		mocks.workspaces, mocks.members, mocks.boards, mocks.lists, mocks.cards,
		mocks.labels, mocks.comments, mocks.attachments, mocks.files,
		access, activity, ids, logger,
	)
	return service, mocks
}

func TestWorkspaceService_Delete_CascadesToAllWorkspaceData(t *testing.T) {
	service, mocks := newTestWorkspaceService(t)

	workspace := &entity.Workspace{ID: "w01AAAA", Name: "Product", CreatedBy: "user-1"}
	boards := []*entity.Board{{ID: "b01BOARD", WorkspaceID: "w01AAAA", Name: "Sprint"}}
	cards := []*entity.Card{testCard("c01CARD", "l01LIST", 1024)}
	orphaned := []*entity.Attachment{
		{ID: "a01FILE", CardID: "c01CARD", ObjectKey: "attachments/b01BOARD/c01CARD/a01FILE/spec.pdf"},
	}

	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "owner"), nil)
	mocks.workspaces.On("FindByID", mock.Anything, "w01AAAA").Return(workspace, nil)
	mocks.boards.On("FindByWorkspace", mock.Anything, "w01AAAA", true).Return(boards, nil)
	mocks.cards.On("FindByBoard", mock.Anything, "b01BOARD", true).Return(cards, nil)
	mocks.attachments.On("FindByCards", mock.Anything, []string{"c01CARD"}).Return(orphaned, nil)
	mocks.comments.On("DeleteByCards", mock.Anything, []string{"c01CARD"}).Return(nil)
	mocks.attachments.On("DeleteByCards", mock.Anything, []string{"c01CARD"}).Return(nil)
	mocks.labels.On("DeleteByBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.cards.On("DeleteByBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.lists.On("DeleteByBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.boards.On("DeleteByWorkspace", mock.Anything, "w01AAAA").Return(nil)
	mocks.members.On("DeleteByWorkspace", mock.Anything, "w01AAAA").Return(nil)
	mocks.workspaces.On("Delete", mock.Anything, "w01AAAA").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.MatchedBy(func(a *entity.Activity) bool {
		return a.Action == entity.ActivityWorkspaceDeleted && a.EntityID == "w01AAAA"
	})).Return(nil)
	mocks.activities.On("DeleteByWorkspace", mock.Anything, "w01AAAA").Return(nil)
	mocks.files.On("Delete", mock.Anything, orphaned[0].ObjectKey).Return(nil)

	err := service.Delete(context.Background(), "user-1", "w01AAAA")

	assert.NoError(t, err)
	mocks.comments.AssertExpectations(t)
	mocks.attachments.AssertExpectations(t)
	mocks.labels.AssertExpectations(t)
	mocks.activities.AssertExpectations(t)
	mocks.files.AssertExpectations(t)
}

func TestWorkspaceService_Delete_AdminDenied(t *testing.T) {
	service, mocks := newTestWorkspaceService(t)

	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-2", "w01AAAA").
		Return(activeMember("user-2", "w01AAAA", "admin"), nil)

	err := service.Delete(context.Background(), "user-2", "w01AAAA")

	var wsErr *domainErrors.WorkspaceError
	assert.ErrorAs(t, err, &wsErr)
	assert.Equal(t, domainErrors.ErrTypeInsufficientPermissions, wsErr.Type)
	mocks.workspaces.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mocks.activities.AssertNotCalled(t, "DeleteByWorkspace", mock.Anything, mock.Anything)
}

func TestWorkspaceService_Delete_EmptyWorkspace(t *testing.T) {
	service, mocks := newTestWorkspaceService(t)

	workspace := &entity.Workspace{ID: "w01AAAA", Name: "Product", CreatedBy: "user-1"}

	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "owner"), nil)
	mocks.workspaces.On("FindByID", mock.Anything, "w01AAAA").Return(workspace, nil)
	mocks.boards.On("FindByWorkspace", mock.Anything, "w01AAAA", true).Return([]*entity.Board{}, nil)
	mocks.attachments.On("FindByCards", mock.Anything, []string{}).Return([]*entity.Attachment{}, nil)
	mocks.comments.On("DeleteByCards", mock.Anything, []string{}).Return(nil)
	mocks.attachments.On("DeleteByCards", mock.Anything, []string{}).Return(nil)
	mocks.boards.On("DeleteByWorkspace", mock.Anything, "w01AAAA").Return(nil)
	mocks.members.On("DeleteByWorkspace", mock.Anything, "w01AAAA").Return(nil)
	mocks.workspaces.On("Delete", mock.Anything, "w01AAAA").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil)
	mocks.activities.On("DeleteByWorkspace", mock.Anything, "w01AAAA").Return(nil)

	err := service.Delete(context.Background(), "user-1", "w01AAAA")

	assert.NoError(t, err)
	mocks.cards.AssertNotCalled(t, "DeleteByBoard", mock.Anything, mock.Anything)
	mocks.labels.AssertNotCalled(t, "DeleteByBoard", mock.Anything, mock.Anything)
}
