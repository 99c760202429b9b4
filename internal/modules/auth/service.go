package auth

import (
	"context"
	"errors"
	"strings"

	"clipstream/internal/domain"
	"clipstream/internal/pkg/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service owns the session lifecycle: it is the only writer of the
// stored refresh-token value, and every write is a full overwrite.
type Service struct {
	users  UserRepositoryInterface
	tokens tokenService
}

func NewService(users UserRepositoryInterface, tokens tokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     req.FullName,
		PasswordHash: string(hash),
		AvatarURL:    req.AvatarURL,
		CoverURL:     req.CoverURL,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and starts a session. An unknown
// identifier reports the same error as a wrong password so login
// cannot be used to probe which accounts exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.mintPair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	// Overwrites any prior session: at most one refresh token is live
	// per user.
	if err := s.users.SetRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, pair, nil
}

// RefreshSession rotates the refresh token: the presented token is only
// honored while it is still the stored one, and honoring it immediately
// replaces it. A replayed (superseded) token, or one surviving a
// logout, fails with ErrTokenReused.
func (s *Service) RefreshSession(ctx context.Context, presented string) (*TokenPair, error) {
	if presented == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := s.tokens.Verify(presented, token.KindRefresh)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, token.ErrInvalidToken
		}
		return nil, err
	}

	pair, err := s.mintPair(userID)
	if err != nil {
		return nil, err
	}

	// Compare-and-set: of two concurrent renewals with the same token,
	// exactly one lands; the other sees the already-rotated value.
	rotated, err := s.users.RotateRefreshToken(ctx, userID, presented, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !rotated {
		return nil, ErrTokenReused
	}

	return pair, nil
}

// Logout ends the session. Idempotent.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.users.SetRefreshToken(ctx, userID, nil)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateAccount(ctx context.Context, userID int64, req UpdateAccountRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, string(hash))
}

func (s *Service) UpdateProfileImages(ctx context.Context, userID int64, avatarURL, coverURL string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	if coverURL != "" {
		user.CoverURL = coverURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// mintPair mints the access/refresh pair together. Nothing is persisted
// here; callers persist the refresh token before returning the pair, so
// either both tokens go out or neither does.
func (s *Service) mintPair(userID int64) (*TokenPair, error) {
	accessToken, err := s.tokens.Mint(userID, token.KindAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Mint(userID, token.KindRefresh)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
