package tweet

import (
	"context"
	"testing"

	"clipstream/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockTweetRepo struct {
	mock.Mock
}

func (m *mockTweetRepo) Create(ctx context.Context, t *domain.Tweet) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTweetRepo) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *mockTweetRepo) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Tweet, int64, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Tweet), args.Get(1).(int64), args.Error(2)
}

func (m *mockTweetRepo) Update(ctx context.Context, t *domain.Tweet) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTweetRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	repo := new(mockTweetRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	tw, err := service.Create(context.Background(), 1, CreateTweetRequest{Content: "hello"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), tw.OwnerID)
	assert.Equal(t, "hello", tw.Content)
}

func TestService_ListByUser_Paging(t *testing.T) {
	repo := new(mockTweetRepo)
	repo.On("ListByOwner", mock.Anything, int64(1), 10, 10).Return([]domain.Tweet{
		{ID: 11, OwnerID: 1, Content: "newest", Owner: domain.User{ID: 1, Username: "alice"}},
	}, int64(15), nil)

	service := NewService(repo)

	list, err := service.ListByUser(context.Background(), 1, 2, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(15), list.Total)
	assert.Len(t, list.Tweets, 1)
	require.NotNil(t, list.Tweets[0].Owner)
	assert.Equal(t, "alice", list.Tweets[0].Owner.Username)
}

func TestService_Update_NotOwner(t *testing.T) {
	repo := new(mockTweetRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Tweet{ID: 5, OwnerID: 2}, nil)

	service := NewService(repo)

	_, err := service.Update(context.Background(), 5, 1, UpdateTweetRequest{Content: "nope"})

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockTweetRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	err := service.Delete(context.Background(), 5, 1)

	assert.ErrorIs(t, err, ErrTweetNotFound)
}
