package usecase

import (
	"context"
	"io"
	"time"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockMemberRepository is a mock implementation of MemberRepository.
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByUserAndWorkspace(ctx context.Context, userID, workspaceID string) (*entity.Member, error) {
	args := m.Called(ctx, userID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Member, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) FindWorkspaceIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMemberRepository) Create(ctx context.Context, member *entity.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateRole(ctx context.Context, workspaceID, userID, role string) error {
	args := m.Called(ctx, workspaceID, userID, role)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateStatus(ctx context.Context, workspaceID, userID, status string) error {
	args := m.Called(ctx, workspaceID, userID, status)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, workspaceID, userID string) error {
	args := m.Called(ctx, workspaceID, userID)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// MockWorkspaceRepository is a mock implementation of WorkspaceRepository.
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindByID(ctx context.Context, id string) (*entity.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Workspace, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBoardRepository is a mock implementation of BoardRepository.
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id string) (*entity.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByWorkspace(ctx context.Context, workspaceID string, includeArchived bool) ([]*entity.Board, error) {
	args := m.Called(ctx, workspaceID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Board), args.Error(1)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *entity.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *entity.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// MockListRepository is a mock implementation of ListRepository.
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) FindByID(ctx context.Context, id string) (*entity.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.List), args.Error(1)
}

func (m *MockListRepository) FindByBoard(ctx context.Context, boardID string, includeArchived bool) ([]*entity.List, error) {
	args := m.Called(ctx, boardID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.List), args.Error(1)
}

func (m *MockListRepository) Create(ctx context.Context, list *entity.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) Update(ctx context.Context, list *entity.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) UpdatePosition(ctx context.Context, id string, position float64) error {
	args := m.Called(ctx, id, position)
	return args.Error(0)
}

func (m *MockListRepository) UpdatePositions(ctx context.Context, positions map[string]float64) error {
	args := m.Called(ctx, positions)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

// MockCardRepository is a mock implementation of CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

func (m *MockCardRepository) FindByList(ctx context.Context, listID string, includeArchived bool) ([]*entity.Card, error) {
	args := m.Called(ctx, listID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Card), args.Error(1)
}

func (m *MockCardRepository) FindByBoard(ctx context.Context, boardID string, includeArchived bool) ([]*entity.Card, error) {
	args := m.Called(ctx, boardID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Card), args.Error(1)
}

func (m *MockCardRepository) Create(ctx context.Context, card *entity.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Update(ctx context.Context, card *entity.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Move(ctx context.Context, id, listID string, position float64) error {
	args := m.Called(ctx, id, listID, position)
	return args.Error(0)
}

func (m *MockCardRepository) UpdatePositions(ctx context.Context, positions map[string]float64) error {
	args := m.Called(ctx, positions)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Append(ctx context.Context, activity *entity.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]*entity.Activity, error) {
	args := m.Called(ctx, workspaceID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entity.Activity, error) {
	args := m.Called(ctx, boardID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// MockCacheRepository is a mock implementation of CacheRepository.
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetBoardSnapshot(ctx context.Context, boardID string) ([]byte, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetBoardSnapshot(ctx context.Context, boardID string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, boardID, data, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateBoard(ctx context.Context, boardID string) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

// MockLabelRepository is a mock implementation of LabelRepository.
type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) FindByID(ctx context.Context, id string) (*entity.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Label), args.Error(1)
}

func (m *MockLabelRepository) FindByBoard(ctx context.Context, boardID string) ([]*entity.Label, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Label), args.Error(1)
}

func (m *MockLabelRepository) Create(ctx context.Context, label *entity.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) Update(ctx context.Context, label *entity.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLabelRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id string) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByCard(ctx context.Context, cardID string, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(ctx, cardID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByCards(ctx context.Context, cardIDs []string) error {
	args := m.Called(ctx, cardIDs)
	return args.Error(0)
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository.
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id string) (*entity.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByCard(ctx context.Context, cardID string) ([]*entity.Attachment, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByCards(ctx context.Context, cardIDs []string) ([]*entity.Attachment, error) {
	args := m.Called(ctx, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *entity.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttachmentRepository) DeleteByCards(ctx context.Context, cardIDs []string) error {
	args := m.Called(ctx, cardIDs)
	return args.Error(0)
}

// MockFileRepository is a mock implementation of FileRepository.
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	args := m.Called(ctx, key, contentType, body, size)
	return args.Error(0)
}

func (m *MockFileRepository) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
