package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clipstream/internal/domain"
	"clipstream/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock user repository implementing UserRepositoryInterface.
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepo) SetRefreshToken(ctx context.Context, userID int64, value *string) error {
	args := m.Called(ctx, userID, value)
	return args.Error(0)
}

func (m *mockUserRepo) RotateRefreshToken(ctx context.Context, userID int64, oldValue, newValue string) (bool, error) {
	args := m.Called(ctx, userID, oldValue, newValue)
	return args.Bool(0), args.Error(1)
}

func newTokens() *token.Service {
	return token.New("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Register_Success(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, newTokens())

	user, err := service.Register(context.Background(), RegisterRequest{
		FullName: "Alice Doe",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-pw-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Register_Taken(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(true, nil)

	service := NewService(users, newTokens())

	_, err := service.Register(context.Background(), RegisterRequest{
		FullName: "Alice Doe",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-pw-123",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsernameOrEmail", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashOf(t, "correct-pw"),
	}, nil)

	var persisted string
	users.On("SetRefreshToken", mock.Anything, int64(1), mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = *args.Get(2).(*string)
		}).
		Return(nil)

	service := NewService(users, newTokens())

	user, pair, err := service.Login(context.Background(), LoginRequest{Identifier: "alice", Password: "correct-pw"})

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	// The stored value mirrors the returned refresh token verbatim.
	assert.Equal(t, pair.RefreshToken, persisted)
}

func TestService_Login_UnknownIdentifier(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsernameOrEmail", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, newTokens())

	_, _, err := service.Login(context.Background(), LoginRequest{Identifier: "nobody", Password: "whatever"})

	// Folded into invalid-credentials so login cannot enumerate users,
	// and no persistence write happens.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "SetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsernameOrEmail", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "correct-pw"),
	}, nil)

	service := NewService(users, newTokens())

	_, _, err := service.Login(context.Background(), LoginRequest{Identifier: "alice", Password: "wrong-pw"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "SetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_PersistFailureReturnsNoTokens(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsernameOrEmail", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "correct-pw"),
	}, nil)
	users.On("SetRefreshToken", mock.Anything, int64(1), mock.Anything).Return(gorm.ErrInvalidDB)

	service := NewService(users, newTokens())

	user, pair, err := service.Login(context.Background(), LoginRequest{Identifier: "alice", Password: "correct-pw"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Nil(t, pair)
}

func TestService_RefreshSession_MissingToken(t *testing.T) {
	service := NewService(new(mockUserRepo), newTokens())

	_, err := service.RefreshSession(context.Background(), "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_RefreshSession_InvalidToken(t *testing.T) {
	service := NewService(new(mockUserRepo), newTokens())

	_, err := service.RefreshSession(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_RefreshSession_AccessTokenRejected(t *testing.T) {
	tokens := newTokens()
	accessToken, err := tokens.Mint(1, token.KindAccess)
	require.NoError(t, err)

	service := NewService(new(mockUserRepo), tokens)

	_, err = service.RefreshSession(context.Background(), accessToken)

	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_RefreshSession_UserGone(t *testing.T) {
	tokens := newTokens()
	refreshToken, err := tokens.Mint(99, token.KindRefresh)
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, tokens)

	_, err = service.RefreshSession(context.Background(), refreshToken)

	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_RefreshSession_Rotates(t *testing.T) {
	tokens := newTokens()
	presented, err := tokens.Mint(1, token.KindRefresh)
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("RotateRefreshToken", mock.Anything, int64(1), presented, mock.Anything).Return(true, nil)

	service := NewService(users, tokens)

	pair, err := service.RefreshSession(context.Background(), presented)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, presented, pair.RefreshToken)
	users.AssertExpectations(t)
}

func TestService_RefreshSession_SupersededTokenFails(t *testing.T) {
	tokens := newTokens()
	stale, err := tokens.Mint(1, token.KindRefresh)
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	// Stored value has moved on; the conditional update matches nothing.
	users.On("RotateRefreshToken", mock.Anything, int64(1), stale, mock.Anything).Return(false, nil)

	service := NewService(users, tokens)

	_, err = service.RefreshSession(context.Background(), stale)

	assert.ErrorIs(t, err, ErrTokenReused)
}

func TestService_Logout_Idempotent(t *testing.T) {
	users := new(mockUserRepo)
	users.On("SetRefreshToken", mock.Anything, int64(1), (*string)(nil)).Return(nil).Twice()

	service := NewService(users, newTokens())

	require.NoError(t, service.Logout(context.Background(), 1))
	require.NoError(t, service.Logout(context.Background(), 1))
	users.AssertExpectations(t)
}

// fakeUserRepo implements the stored-value semantics for lifecycle
// tests: a single user row whose refresh_token column supports the
// same conditional update the real repository issues.
type fakeUserRepo struct {
	mu     sync.Mutex
	user   domain.User
	stored *string
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.user.ID {
		return nil, gorm.ErrRecordNotFound
	}
	u := f.user
	return &u, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if identifier != f.user.Username {
		return nil, gorm.ErrRecordNotFound
	}
	u := f.user
	return &u, nil
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error { return nil }

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return nil
}

func (f *fakeUserRepo) SetRefreshToken(ctx context.Context, userID int64, value *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = value
	return nil
}

func (f *fakeUserRepo) RotateRefreshToken(ctx context.Context, userID int64, oldValue, newValue string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stored == nil || *f.stored != oldValue {
		return false, nil
	}
	v := newValue
	f.stored = &v
	return true, nil
}

func TestService_SessionLifecycle(t *testing.T) {
	repo := &fakeUserRepo{user: domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashOf(t, "correct-pw"),
	}}
	service := NewService(repo, newTokens())
	ctx := context.Background()

	_, pair, err := service.Login(ctx, LoginRequest{Identifier: "alice", Password: "correct-pw"})
	require.NoError(t, err)

	// First renewal succeeds and rotates.
	next, err := service.RefreshSession(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, next.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// Replaying the superseded token fails even though it has not expired.
	_, err = service.RefreshSession(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenReused)

	// Logout, then the current token is dead too.
	require.NoError(t, service.Logout(ctx, 1))
	_, err = service.RefreshSession(ctx, next.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenReused)
}

func TestService_ConcurrentRefresh_ExactlyOneWinner(t *testing.T) {
	repo := &fakeUserRepo{user: domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashOf(t, "correct-pw"),
	}}
	service := NewService(repo, newTokens())
	ctx := context.Background()

	_, pair, err := service.Login(ctx, LoginRequest{Identifier: "alice", Password: "correct-pw"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.RefreshSession(ctx, pair.RefreshToken)
		}(i)
	}
	wg.Wait()

	var wins, reuses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrTokenReused):
			reuses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one renewal must win")
	assert.Equal(t, 1, reuses, "the loser must see token reuse")
}
