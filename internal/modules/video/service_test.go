package video

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"clipstream/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVideoRepo struct {
	mock.Mock
}

func (m *mockVideoRepo) Create(ctx context.Context, v *domain.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *mockVideoRepo) ListByChannel(ctx context.Context, channelID int64, includeDrafts bool, offset, limit int) ([]domain.Video, int64, error) {
	args := m.Called(ctx, channelID, includeDrafts, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Video), args.Get(1).(int64), args.Error(2)
}

func (m *mockVideoRepo) Update(ctx context.Context, v *domain.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVideoRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoRepo) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeStore records puts and deletes in memory.
type fakeStore struct {
	puts    []string
	deletes []string
	putErr  error
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.puts = append(f.puts, key)
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStore) PresignGet(ctx context.Context, key string) (string, error) {
	return "https://cdn.example.com/" + key + "?signed=1", nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func TestService_Publish_Success(t *testing.T) {
	repo := new(mockVideoRepo)
	store := &fakeStore{}

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, store)

	v, err := service.Publish(context.Background(), 1,
		PublishRequest{Title: "first clip", Duration: 42},
		Upload{ContentType: "video/mp4", Body: strings.NewReader("bytes")},
		nil)

	require.NoError(t, err)
	assert.Equal(t, "first clip", v.Title)
	assert.True(t, v.IsPublished)
	assert.NotEmpty(t, v.VideoKey)
	assert.Contains(t, v.VideoURL, v.VideoKey)
	require.Len(t, store.puts, 1)
}

func TestService_Publish_CreateFailureCleansUp(t *testing.T) {
	repo := new(mockVideoRepo)
	store := &fakeStore{}

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := NewService(repo, store)

	_, err := service.Publish(context.Background(), 1,
		PublishRequest{Title: "first clip"},
		Upload{ContentType: "video/mp4", Body: strings.NewReader("bytes")},
		nil)

	require.Error(t, err)
	require.Len(t, store.deletes, 1)
	assert.Equal(t, store.puts[0], store.deletes[0])
}

func TestService_Get_CountsView(t *testing.T) {
	repo := new(mockVideoRepo)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 2, IsPublished: true, Views: 5}, nil)
	repo.On("IncrementViews", mock.Anything, int64(10)).Return(nil)

	service := NewService(repo, &fakeStore{})

	v, err := service.Get(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(6), v.Views)
	repo.AssertExpectations(t)
}

func TestService_Get_DraftHiddenFromOthers(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 2, IsPublished: false}, nil)

	service := NewService(repo, &fakeStore{})

	_, err := service.Get(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrVideoNotFound)
	repo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestService_Get_DraftVisibleToOwnerWithoutView(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 2, IsPublished: false, Views: 3}, nil)

	service := NewService(repo, &fakeStore{})

	v, err := service.Get(context.Background(), 10, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Views)
	repo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestService_ListByChannel_OwnerSeesDrafts(t *testing.T) {
	repo := new(mockVideoRepo)

	repo.On("ListByChannel", mock.Anything, int64(2), true, 0, 10).Return([]domain.Video{{ID: 10}}, int64(1), nil)
	repo.On("ListByChannel", mock.Anything, int64(2), false, 0, 10).Return([]domain.Video{}, int64(0), nil)

	service := NewService(repo, &fakeStore{})

	asOwner, err := service.ListByChannel(context.Background(), 2, 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), asOwner.Total)

	asVisitor, err := service.ListByChannel(context.Background(), 2, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), asVisitor.Total)
}

func TestService_Delete_RemovesMedia(t *testing.T) {
	repo := new(mockVideoRepo)
	store := &fakeStore{}

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{
		ID: 10, OwnerID: 1, VideoKey: "videos/a", ThumbnailKey: "thumbnails/b",
	}, nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(nil)

	service := NewService(repo, store)

	err := service.Delete(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"videos/a", "thumbnails/b"}, store.deletes)
}

func TestService_Delete_NotOwner(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 2}, nil)

	service := NewService(repo, &fakeStore{})

	err := service.Delete(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_SourceURL_OwnerGetsSignedLink(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(
		&domain.Video{ID: 10, OwnerID: 1, VideoKey: "videos/abc", IsPublished: false}, nil)

	service := NewService(repo, &fakeStore{})

	url, err := service.SourceURL(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Contains(t, url, "videos/abc")
	assert.Contains(t, url, "signed=1")
}

func TestService_SourceURL_NotOwner(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 2, VideoKey: "videos/abc"}, nil)

	service := NewService(repo, &fakeStore{})

	_, err := service.SourceURL(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestService_SourceURL_NoStore(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 1, VideoKey: "videos/abc"}, nil)

	service := NewService(repo, nil)

	_, err := service.SourceURL(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrUploadsDisabled)
}

func TestService_TogglePublish(t *testing.T) {
	repo := new(mockVideoRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Video{ID: 10, OwnerID: 1, IsPublished: true}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, &fakeStore{})

	v, err := service.TogglePublish(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.False(t, v.IsPublished)
}
