package repository

import (
	"context"
	"strings"

	"clipstream/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Username = normalizeIdentifier(u.Username)
	u.Email = normalizeIdentifier(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByID is the primary-key lookup.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsernameOrEmail is the find-by-field lookup used at login.
// Deliberately a separate operation from GetByID.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	identifier = normalizeIdentifier(identifier)
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? OR email = ?", normalizeIdentifier(username), normalizeIdentifier(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// SetRefreshToken overwrites the stored refresh token as a whole.
// nil clears it (logout). Clearing an already-empty value is fine.
func (r *UserRepository) SetRefreshToken(ctx context.Context, userID int64, value *string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Update("refresh_token", value).Error
}

// RotateRefreshToken replaces the stored refresh token only if the
// current value still equals oldValue — a single conditional UPDATE, so
// two concurrent rotations of the same token cannot both win. Returns
// false when the stored value had already moved on (or was cleared).
func (r *UserRepository) RotateRefreshToken(ctx context.Context, userID int64, oldValue, newValue string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND refresh_token = ?", userID, oldValue).
		Update("refresh_token", newValue)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func normalizeIdentifier(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
