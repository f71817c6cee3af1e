package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type cardServiceMocks struct {
	members     *MockMemberRepository
	boards      *MockBoardRepository
	lists       *MockListRepository
	cards       *MockCardRepository
	labels      *MockLabelRepository
	comments    *MockCommentRepository
	attachments *MockAttachmentRepository
	files       *MockFileRepository
	cache       *MockCacheRepository
	activities  *MockActivityRepository
}

func newTestCardService(t *testing.T) (*CardService, *cardServiceMocks) {
	t.Helper()

	mocks := &cardServiceMocks{
		members:     new(MockMemberRepository),
		boards:      new(MockBoardRepository),
		lists:       new(MockListRepository),
		cards:       new(MockCardRepository),
		labels:      new(MockLabelRepository),
		comments:    new(MockCommentRepository),
		attachments: new(MockAttachmentRepository),
		files:       new(MockFileRepository),
		cache:       new(MockCacheRepository),
		activities:  new(MockActivityRepository),
	}

	ids := utils.NewUniqueIDService()
	logger := zap.NewNop()
	access := newTestAccessService(mocks.members)
	activity := NewActivityService(mocks.activities, access, ids, nil, logger)
	boardSvc := NewBoardService(
		mocks.boards, mocks.lists, mocks.cards, mocks.labels,
		mocks.comments, mocks.attachments, mocks.files, mocks.cache,
		access, activity, ids, 5*time.Minute, logger,
	)
	service := NewCardService(
		mocks.cards, mocks.lists, mocks.boards,
		mocks.comments, mocks.attachments, mocks.files, boardSvc,
		access, activity, ids, logger,
	)
	return service, mocks
}

func testBoard() *entity.Board {
	return &entity.Board{ID: "b01BOARD", WorkspaceID: "w01AAAA", Name: "Sprint"}
}

func testCard(id, listID string, position float64) *entity.Card {
	return &entity.Card{ID: id, ListID: listID, BoardID: "b01BOARD", Title: "t", Position: position}
}

func TestCardService_Move_WithinList(t *testing.T) {
	service, mocks := newTestCardService(t)

	moving := testCard("c01MOVING", "l01LIST", 3072)
	siblings := []*entity.Card{
		testCard("c01FIRST", "l01LIST", 1024),
		testCard("c01SECOND", "l01LIST", 2048),
		moving,
	}

	mocks.cards.On("FindByID", mock.Anything, "c01MOVING").Return(moving, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "member"), nil)
	mocks.lists.On("FindByID", mock.Anything, "l01LIST").
		Return(&entity.List{ID: "l01LIST", BoardID: "b01BOARD", Name: "Doing"}, nil)
	mocks.cards.On("FindByList", mock.Anything, "l01LIST", false).Return(siblings, nil)
	mocks.cards.On("Move", mock.Anything, "c01MOVING", "l01LIST", mock.AnythingOfType("float64")).Return(nil)
	mocks.cache.On("InvalidateBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil).Maybe()

	moved, err := service.Move(context.Background(), "user-1", "c01MOVING", "l01LIST", 1)

	assert.NoError(t, err)
	// Dropped between positions 1024 and 2048, the card takes the midpoint.
	assert.Equal(t, 1536.0, moved.Position)
	assert.Equal(t, "l01LIST", moved.ListID)
	mocks.cards.AssertExpectations(t)
}

func TestCardService_Move_ToOtherList(t *testing.T) {
	service, mocks := newTestCardService(t)

	moving := testCard("c01MOVING", "l01FROM", 1024)

	mocks.cards.On("FindByID", mock.Anything, "c01MOVING").Return(moving, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "member"), nil)
	mocks.lists.On("FindByID", mock.Anything, "l01TO").
		Return(&entity.List{ID: "l01TO", BoardID: "b01BOARD", Name: "Done"}, nil)
	mocks.cards.On("FindByList", mock.Anything, "l01TO", false).
		Return([]*entity.Card{testCard("c01OTHER", "l01TO", 1024)}, nil)
	mocks.cards.On("Move", mock.Anything, "c01MOVING", "l01TO", 2048.0).Return(nil)
	mocks.cache.On("InvalidateBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil).Maybe()

	moved, err := service.Move(context.Background(), "user-1", "c01MOVING", "l01TO", 1)

	assert.NoError(t, err)
	assert.Equal(t, "l01TO", moved.ListID)
	assert.Equal(t, 2048.0, moved.Position)
}

func TestCardService_Move_AcrossBoardsConflicts(t *testing.T) {
	service, mocks := newTestCardService(t)

	moving := testCard("c01MOVING", "l01FROM", 1024)

	mocks.cards.On("FindByID", mock.Anything, "c01MOVING").Return(moving, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "member"), nil)
	mocks.lists.On("FindByID", mock.Anything, "l01ELSEWHERE").
		Return(&entity.List{ID: "l01ELSEWHERE", BoardID: "b01OTHER", Name: "Inbox"}, nil)

	_, err := service.Move(context.Background(), "user-1", "c01MOVING", "l01ELSEWHERE", 0)

	var resErr *domainErrors.ResourceError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, domainErrors.ErrTypeConflict, resErr.Type)
	mocks.cards.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCardService_Move_RenormalisesCollapsedGaps(t *testing.T) {
	service, mocks := newTestCardService(t)

	moving := testCard("c01MOVING", "l01LIST", 5000)
	siblings := []*entity.Card{
		testCard("c01FIRST", "l01LIST", 1),
		testCard("c01SECOND", "l01LIST", 1+1e-9),
		moving,
	}

	mocks.cards.On("FindByID", mock.Anything, "c01MOVING").Return(moving, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "member"), nil)
	mocks.lists.On("FindByID", mock.Anything, "l01LIST").
		Return(&entity.List{ID: "l01LIST", BoardID: "b01BOARD", Name: "Doing"}, nil)
	mocks.cards.On("FindByList", mock.Anything, "l01LIST", false).Return(siblings, nil)
	mocks.cards.On("UpdatePositions", mock.Anything, mock.Anything).Return(nil)
	mocks.cards.On("Move", mock.Anything, "c01MOVING", "l01LIST", 1536.0).Return(nil)
	mocks.cache.On("InvalidateBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil).Maybe()

	moved, err := service.Move(context.Background(), "user-1", "c01MOVING", "l01LIST", 1)

	assert.NoError(t, err)
	// Siblings are renormalised to 1024 and 2048 first, then the midpoint.
	assert.Equal(t, 1536.0, moved.Position)
	mocks.cards.AssertCalled(t, "UpdatePositions", mock.Anything,
		map[string]float64{"c01FIRST": 1024, "c01SECOND": 2048})
}

func TestCardService_Move_ViewerDenied(t *testing.T) {
	service, mocks := newTestCardService(t)

	moving := testCard("c01MOVING", "l01LIST", 1024)

	mocks.cards.On("FindByID", mock.Anything, "c01MOVING").Return(moving, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "viewer"), nil)

	_, err := service.Move(context.Background(), "user-1", "c01MOVING", "l01LIST", 0)

	var wsErr *domainErrors.WorkspaceError
	assert.ErrorAs(t, err, &wsErr)
	assert.Equal(t, domainErrors.ErrTypeInsufficientPermissions, wsErr.Type)
	mocks.cards.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCardService_Delete_CascadesToCommentsAndAttachments(t *testing.T) {
	service, mocks := newTestCardService(t)

	card := testCard("c01CARD", "l01LIST", 1024)
	orphaned := []*entity.Attachment{
		{ID: "a01FILE", CardID: "c01CARD", ObjectKey: "attachments/b01BOARD/c01CARD/a01FILE/notes.txt"},
	}

	mocks.cards.On("FindByID", mock.Anything, "c01CARD").Return(card, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "admin"), nil)
	mocks.attachments.On("FindByCards", mock.Anything, []string{"c01CARD"}).Return(orphaned, nil)
	mocks.comments.On("DeleteByCards", mock.Anything, []string{"c01CARD"}).Return(nil)
	mocks.attachments.On("DeleteByCards", mock.Anything, []string{"c01CARD"}).Return(nil)
	mocks.cards.On("Delete", mock.Anything, "c01CARD").Return(nil)
	mocks.files.On("Delete", mock.Anything, orphaned[0].ObjectKey).Return(nil)
	mocks.cache.On("InvalidateBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil)

	err := service.Delete(context.Background(), "user-1", "c01CARD")

	assert.NoError(t, err)
	mocks.comments.AssertExpectations(t)
	mocks.attachments.AssertExpectations(t)
	mocks.files.AssertExpectations(t)
}

func TestCardService_Delete_ObjectReapFailureDoesNotFailDelete(t *testing.T) {
	service, mocks := newTestCardService(t)

	card := testCard("c01CARD", "l01LIST", 1024)
	orphaned := []*entity.Attachment{
		{ID: "a01FILE", CardID: "c01CARD", ObjectKey: "attachments/b01BOARD/c01CARD/a01FILE/notes.txt"},
	}

	mocks.cards.On("FindByID", mock.Anything, "c01CARD").Return(card, nil)
	mocks.boards.On("FindByID", mock.Anything, "b01BOARD").Return(testBoard(), nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", "w01AAAA").
		Return(activeMember("user-1", "w01AAAA", "admin"), nil)
	mocks.attachments.On("FindByCards", mock.Anything, []string{"c01CARD"}).Return(orphaned, nil)
	mocks.comments.On("DeleteByCards", mock.Anything, []string{"c01CARD"}).Return(nil)
	mocks.attachments.On("DeleteByCards", mock.Anything, []string{"c01CARD"}).Return(nil)
	mocks.cards.On("Delete", mock.Anything, "c01CARD").Return(nil)
	mocks.files.On("Delete", mock.Anything, orphaned[0].ObjectKey).Return(assert.AnError)
	mocks.cache.On("InvalidateBoard", mock.Anything, "b01BOARD").Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil)

	err := service.Delete(context.Background(), "user-1", "c01CARD")

	assert.NoError(t, err)
	mocks.files.AssertExpectations(t)
}
