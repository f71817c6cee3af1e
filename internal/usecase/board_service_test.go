package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type boardServiceMocks struct {
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

const testSnapshotTTL = 5 * time.Minute

func newTestBoardService(t *testing.T) (*BoardService, *boardServiceMocks) {
	t.Helper()

	mocks := &boardServiceMocks{
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
	service := NewBoardService(
		mocks.boards, mocks.lists, mocks.cards, mocks.labels,
		mocks.comments, mocks.attachments, mocks.files, mocks.cache,
		access, activity, ids, testSnapshotTTL, logger,
	)
	return service, mocks
}

func TestBoardService_Get_ServesCachedSnapshot(t *testing.T) {
	service, mocks := newTestBoardService(t)

	board := testBoard()
	cached := &BoardSnapshot{
		Board:  board,
		Lists:  []*entity.List{{ID: "l01LIST", BoardID: board.ID, Name: "Todo", Position: 1024}},
		Cards:  []*entity.Card{testCard("c01CARD", "l01LIST", 1024)},
		Labels: []*entity.Label{{ID: "lb01LABEL", BoardID: board.ID, Name: "bug", Color: "#ff0000"}},
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	mocks.boards.On("FindByID", mock.Anything, board.ID).Return(board, nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", board.WorkspaceID).
		Return(activeMember("user-1", board.WorkspaceID, "viewer"), nil)
	mocks.cache.On("GetBoardSnapshot", mock.Anything, board.ID).Return(payload, nil)

	snapshot, err := service.Get(context.Background(), "user-1", board.ID)

	assert.NoError(t, err)
	assert.Equal(t, cached.Board.ID, snapshot.Board.ID)
	assert.Len(t, snapshot.Lists, 1)
	assert.Len(t, snapshot.Cards, 1)
	assert.Len(t, snapshot.Labels, 1)
	mocks.lists.AssertNotCalled(t, "FindByBoard", mock.Anything, mock.Anything, mock.Anything)
	mocks.cards.AssertNotCalled(t, "FindByBoard", mock.Anything, mock.Anything, mock.Anything)
	mocks.cache.AssertNotCalled(t, "SetBoardSnapshot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBoardService_Get_RebuildsAndCachesOnMiss(t *testing.T) {
	service, mocks := newTestBoardService(t)

	board := testBoard()
	lists := []*entity.List{{ID: "l01LIST", BoardID: board.ID, Name: "Todo", Position: 1024}}
	cards := []*entity.Card{testCard("c01CARD", "l01LIST", 1024)}
	labels := []*entity.Label{{ID: "lb01LABEL", BoardID: board.ID, Name: "bug", Color: "#ff0000"}}

	mocks.boards.On("FindByID", mock.Anything, board.ID).Return(board, nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", board.WorkspaceID).
		Return(activeMember("user-1", board.WorkspaceID, "viewer"), nil)
	mocks.cache.On("GetBoardSnapshot", mock.Anything, board.ID).Return(nil, nil)
	mocks.lists.On("FindByBoard", mock.Anything, board.ID, false).Return(lists, nil)
	mocks.cards.On("FindByBoard", mock.Anything, board.ID, false).Return(cards, nil)
	mocks.labels.On("FindByBoard", mock.Anything, board.ID).Return(labels, nil)
	mocks.cache.On("SetBoardSnapshot", mock.Anything, board.ID, mock.MatchedBy(func(data []byte) bool {
		var snapshot BoardSnapshot
		return json.Unmarshal(data, &snapshot) == nil && snapshot.Board.ID == board.ID
	}), testSnapshotTTL).Return(nil)

	snapshot, err := service.Get(context.Background(), "user-1", board.ID)

	assert.NoError(t, err)
	assert.Equal(t, board, snapshot.Board)
	assert.Equal(t, lists, snapshot.Lists)
	assert.Equal(t, cards, snapshot.Cards)
	assert.Equal(t, labels, snapshot.Labels)
	mocks.cache.AssertExpectations(t)
}

func TestBoardService_Get_DiscardsCorruptSnapshot(t *testing.T) {
	service, mocks := newTestBoardService(t)

	board := testBoard()

	mocks.boards.On("FindByID", mock.Anything, board.ID).Return(board, nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", board.WorkspaceID).
		Return(activeMember("user-1", board.WorkspaceID, "viewer"), nil)
	mocks.cache.On("GetBoardSnapshot", mock.Anything, board.ID).Return([]byte("{not json"), nil)
	mocks.lists.On("FindByBoard", mock.Anything, board.ID, false).Return([]*entity.List{}, nil)
	mocks.cards.On("FindByBoard", mock.Anything, board.ID, false).Return([]*entity.Card{}, nil)
	mocks.labels.On("FindByBoard", mock.Anything, board.ID).Return([]*entity.Label{}, nil)
	mocks.cache.On("SetBoardSnapshot", mock.Anything, board.ID, mock.Anything, testSnapshotTTL).Return(nil)

	snapshot, err := service.Get(context.Background(), "user-1", board.ID)

	assert.NoError(t, err)
	assert.Equal(t, board, snapshot.Board)
	mocks.cache.AssertExpectations(t)
}

func TestBoardService_Delete_CascadesToBoardData(t *testing.T) {
	service, mocks := newTestBoardService(t)

	board := testBoard()
	cards := []*entity.Card{
		testCard("c01FIRST", "l01LIST", 1024),
		testCard("c01SECOND", "l01LIST", 2048),
	}
	cardIDs := []string{"c01FIRST", "c01SECOND"}
	orphaned := []*entity.Attachment{
		{ID: "a01FILE", CardID: "c01FIRST", ObjectKey: "attachments/b01BOARD/c01FIRST/a01FILE/spec.pdf"},
	}

	mocks.boards.On("FindByID", mock.Anything, board.ID).Return(board, nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-1", board.WorkspaceID).
		Return(activeMember("user-1", board.WorkspaceID, "admin"), nil)
	mocks.cards.On("FindByBoard", mock.Anything, board.ID, true).Return(cards, nil)
	mocks.attachments.On("FindByCards", mock.Anything, cardIDs).Return(orphaned, nil)
	mocks.comments.On("DeleteByCards", mock.Anything, cardIDs).Return(nil)
	mocks.attachments.On("DeleteByCards", mock.Anything, cardIDs).Return(nil)
	mocks.labels.On("DeleteByBoard", mock.Anything, board.ID).Return(nil)
	mocks.cards.On("DeleteByBoard", mock.Anything, board.ID).Return(nil)
	mocks.lists.On("DeleteByBoard", mock.Anything, board.ID).Return(nil)
	mocks.boards.On("Delete", mock.Anything, board.ID).Return(nil)
	mocks.cache.On("InvalidateBoard", mock.Anything, board.ID).Return(nil)
	mocks.files.On("Delete", mock.Anything, orphaned[0].ObjectKey).Return(nil)
	mocks.activities.On("Append", mock.Anything, mock.Anything).Return(nil)

	err := service.Delete(context.Background(), "user-1", board.ID)

	assert.NoError(t, err)
	mocks.comments.AssertExpectations(t)
	mocks.attachments.AssertExpectations(t)
	mocks.labels.AssertExpectations(t)
	mocks.files.AssertExpectations(t)
}

func TestBoardService_Delete_MemberDenied(t *testing.T) {
	service, mocks := newTestBoardService(t)

	board := testBoard()
	mocks.boards.On("FindByID", mock.Anything, board.ID).Return(board, nil)
	mocks.members.On("FindByUserAndWorkspace", mock.Anything, "user-2", board.WorkspaceID).
		Return(activeMember("user-2", board.WorkspaceID, "member"), nil)

	err := service.Delete(context.Background(), "user-2", board.ID)

	var wsErr *domainErrors.WorkspaceError
	assert.ErrorAs(t, err, &wsErr)
	assert.Equal(t, domainErrors.ErrTypeInsufficientPermissions, wsErr.Type)
	mocks.boards.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mocks.labels.AssertNotCalled(t, "DeleteByBoard", mock.Anything, mock.Anything)
}
