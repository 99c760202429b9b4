package auth

type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,min=2"`
	Username string `json:"username" form:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`

	// Resolved by the handler from uploaded files, if any.
	AvatarURL string `json:"-" form:"-"`
	CoverURL  string `json:"-" form:"-"`
}

// LoginRequest carries the username-or-email identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UpdateAccountRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
}

// TokenPair is one session: both tokens are minted together and the
// refresh token is persisted before either is handed out.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
