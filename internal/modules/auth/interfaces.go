package auth

import (
	"context"

	"clipstream/internal/domain"
	"clipstream/internal/pkg/token"
)

// UserRepositoryInterface — only the methods the auth service uses.
// RotateRefreshToken must be a single conditional update (compare-and-set)
// so that concurrent rotations of the same token cannot both succeed.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	SetRefreshToken(ctx context.Context, userID int64, value *string) error
	RotateRefreshToken(ctx context.Context, userID int64, oldValue, newValue string) (bool, error)
}

type tokenService interface {
	Mint(userID int64, kind token.Kind) (string, error)
	Verify(tokenStr string, kind token.Kind) (int64, error)
}
